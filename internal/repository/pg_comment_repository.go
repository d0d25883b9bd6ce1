package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/helixir/news-board-service/internal/domain"
)

// Compile-time interface verification.
var _ CommentRepository = (*PgCommentRepository)(nil)

// PgCommentRepository is a PostgreSQL implementation of CommentRepository.
type PgCommentRepository struct {
	db DBTX
}

// NewPgCommentRepository creates a new PostgreSQL comment repository.
func NewPgCommentRepository(db DBTX) *PgCommentRepository {
	return &PgCommentRepository{db: db}
}

// ListByArticle returns one page of an article's comments, newest first.
func (r *PgCommentRepository) ListByArticle(ctx context.Context, articleID int64, page domain.Page) ([]*domain.Comment, error) {
	query, args := buildArticleCommentsQuery(articleID, page)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0, page.Limit)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// Create posts a comment under the article and returns the stored row.
func (r *PgCommentRepository) Create(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRow(ctx, query, comment.Body, comment.Username, articleID))
	if err != nil {
		return nil, mapPgError(err, "comment", "create")
	}
	return c, nil
}

// UpdateVotes adjusts the vote count and returns the updated comment.
func (r *PgCommentRepository) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	query := `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRow(ctx, query, delta, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapPgError(err, "comment", "vote on")
	}
	return c, nil
}

// Delete removes a comment.
func (r *PgCommentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return 0, mapPgError(err, "comment", "delete")
	}
	return tag.RowsAffected(), nil
}

// scanComment scans the commentColumns projection.
func scanComment(row pgx.Row) (*domain.Comment, error) {
	c := &domain.Comment{}
	if err := row.Scan(&c.ID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}
