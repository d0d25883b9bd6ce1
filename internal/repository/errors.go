package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/helixir/news-board-service/internal/domain"
)

// PostgreSQL error codes translated to domain errors.
const (
	pgNotNullViolation          = "23502" // not_null_violation
	pgForeignKeyViolation       = "23503" // foreign_key_violation
	pgUniqueViolation           = "23505" // unique_violation
	pgInvalidTextRepresentation = "22P02" // invalid_text_representation
	pgNumericValueOutOfRange    = "22003" // numeric_value_out_of_range
)

// mapPgError converts a driver error into the matching domain error.
// entity names the row being written and op the attempted action; both only
// feed error messages.
func mapPgError(err error, entity, op string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to %s %s: %w", op, entity, err)
	}

	switch pgErr.Code {
	case pgNotNullViolation, pgInvalidTextRepresentation, pgNumericValueOutOfRange:
		field := pgErr.ColumnName
		if field == "" {
			field = entity
		}
		return domain.NewValidationError(field, pgErr.Message)
	case pgForeignKeyViolation:
		return domain.NewReferenceError(entity, pgErr.ConstraintName)
	case pgUniqueViolation:
		return domain.NewAlreadyExistsError(entity, pgErr.ConstraintName)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, entity, err)
	}
}

// isPgUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
