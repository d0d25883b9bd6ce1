package repository

import (
	"context"

	"github.com/helixir/news-board-service/internal/domain"
)

// TopicRepository handles topic persistence.
type TopicRepository interface {
	// List returns every topic.
	List(ctx context.Context) ([]*domain.Topic, error)

	// Create inserts a topic and returns the stored row.
	// Returns *domain.AlreadyExistsError if the slug is taken.
	Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
}
