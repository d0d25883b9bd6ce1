package repository

import (
	"context"
	"fmt"

	"github.com/helixir/news-board-service/internal/domain"
)

// Compile-time interface verification.
var _ TopicRepository = (*PgTopicRepository)(nil)

// PgTopicRepository is a PostgreSQL implementation of TopicRepository.
type PgTopicRepository struct {
	db DBTX
}

// NewPgTopicRepository creates a new PostgreSQL topic repository.
func NewPgTopicRepository(db DBTX) *PgTopicRepository {
	return &PgTopicRepository{db: db}
}

// List returns every topic ordered by slug.
func (r *PgTopicRepository) List(ctx context.Context) ([]*domain.Topic, error) {
	rows, err := r.db.Query(ctx, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var topics []*domain.Topic
	for rows.Next() {
		t := &domain.Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topics: %w", err)
	}

	return topics, nil
}

// Create inserts a topic.
func (r *PgTopicRepository) Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description`

	created := &domain.Topic{}
	err := r.db.QueryRow(ctx, query, topic.Slug, topic.Description).Scan(&created.Slug, &created.Description)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("topic", topic.Slug)
		}
		return nil, mapPgError(err, "topic", "create")
	}

	return created, nil
}
