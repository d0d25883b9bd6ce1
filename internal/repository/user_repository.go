package repository

import (
	"context"

	"github.com/helixir/news-board-service/internal/domain"
)

// UserRepository handles user lookups.
type UserRepository interface {
	// List returns every user.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByUsername retrieves one user.
	// Returns a nil user and a nil error if the username is unknown.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
