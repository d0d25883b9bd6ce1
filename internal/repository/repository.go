// Package repository provides data access interfaces and implementations
// for the News Board Service.
//
// # Repository Interfaces
//
//   - ArticleRepository: article listing, lookup, voting and cascade deletion
//   - CommentRepository: comment pages, creation, voting and deletion
//   - TopicRepository: topic listing and creation
//   - UserRepository: user listing and lookup
//   - ExistenceChecker: answers "does this row exist" for the four resource kinds
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use by multiple goroutines.
// The underlying pgxpool handles connection pooling and synchronization.
//
// # Error Handling
//
// PostgreSQL errors are translated to domain errors in one place (mapPgError):
//
//   - not-null, invalid text and out-of-range violations: *domain.ValidationError
//   - foreign key violations: *domain.ReferenceError
//   - unique violations: *domain.AlreadyExistsError
//
// Everything else is wrapped with fmt.Errorf and the %w verb.
//
// Lookups that race with an existence check (vote, user fetch) report a miss as
// a nil result with a nil error so the checker's error is the one callers see.
//
// # Transactions
//
// Use the DBTX interface to support both pool and transaction contexts.
// Multi-statement writes open their own transaction when the DBTX can begin one:
//
//	db, _ := database.New(ctx, cfg, logger)
//	articles := repository.NewPgArticleRepository(db)
//	deleted, err := articles.Delete(ctx, 3) // comments and article in one tx
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/helixir/news-board-service/internal/database"
)

// DBTX is the database interface supporting both pool and transaction contexts.
// It is satisfied by *database.DB, *pgxpool.Pool, pgx.Tx and pgxmock pools.
type DBTX = database.DBTX

// txBeginner is implemented by DBTX values that can open a transaction
// (*database.DB, *pgxpool.Pool). On a pgx.Tx, Begin opens a savepoint, so the
// statements stay atomic inside the caller's transaction.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
