package repository

import (
	"context"

	"github.com/helixir/news-board-service/internal/domain"
)

// CommentRepository handles comment persistence.
type CommentRepository interface {
	// ListByArticle returns one page of an article's comments, newest first.
	// An unknown article yields an empty page, not an error.
	ListByArticle(ctx context.Context, articleID int64, page domain.Page) ([]*domain.Comment, error)

	// Create posts a comment under the article.
	// Returns *domain.ReferenceError if the author or article does not exist.
	Create(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error)

	// UpdateVotes adds delta to the comment's votes and returns the updated comment.
	// Returns a nil comment and a nil error if no comment has the id.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error)

	// Delete removes a comment and returns the number of rows removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
