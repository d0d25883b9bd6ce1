package repository

import (
	"context"

	"github.com/helixir/news-board-service/internal/domain"
)

// ArticleRepository handles article persistence. Every article it returns
// carries a comment_count computed from the comments table at read time.
type ArticleRepository interface {
	// List returns one page of articles ordered as params request, together
	// with the number of articles matching the topic filter across all pages.
	// Listed articles do not include their body.
	List(ctx context.Context, params domain.ArticleListParams) (*domain.ArticlePage, error)

	// GetByID retrieves a single article with its body.
	// Returns *domain.NotFoundError if no article has the id.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// Create inserts a new article and returns its id.
	// Returns *domain.ReferenceError if the topic or author does not exist.
	Create(ctx context.Context, article domain.NewArticle) (int64, error)

	// UpdateVotes adds delta to the article's votes and returns the updated article.
	// Returns a nil article and a nil error if no article has the id.
	UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)

	// Delete removes the article and all of its comments atomically.
	// Returns the number of articles removed (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
