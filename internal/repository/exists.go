package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/helixir/news-board-service/internal/domain"
)

// ExistenceChecker reports whether a row with the given key exists.
type ExistenceChecker interface {
	// CheckExists returns nil when a row of kind has field = value.
	// Returns *domain.ResourceNotFoundError when no row matches and
	// *domain.ValidationError when kind or field is not on the allow-list.
	CheckExists(ctx context.Context, kind domain.ResourceKind, field string, value any) error
}

// Compile-time interface verification.
var _ ExistenceChecker = (*PgExistenceChecker)(nil)

// PgExistenceChecker is a PostgreSQL implementation of ExistenceChecker.
type PgExistenceChecker struct {
	db DBTX
}

// NewPgExistenceChecker creates a new PostgreSQL existence checker.
func NewPgExistenceChecker(db DBTX) *PgExistenceChecker {
	return &PgExistenceChecker{db: db}
}

// CheckExists looks up a single row by an allow-listed key column.
func (c *PgExistenceChecker) CheckExists(ctx context.Context, kind domain.ResourceKind, field string, value any) error {
	if !kind.IsValid() {
		return domain.NewValidationError("resource", fmt.Sprintf("unknown resource kind %q", kind))
	}
	if !kind.HasKey(field) {
		return domain.NewValidationError("resource", fmt.Sprintf("%q is not a key of %s", field, kind))
	}

	var one int
	err := c.db.QueryRow(ctx, buildExistsQuery(kind, field), value).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewResourceNotFoundError(kind, field, value)
		}
		return mapPgError(err, string(kind), "check")
	}

	return nil
}
