package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/helixir/news-board-service/internal/domain"
)

// Compile-time interface verification.
var _ ArticleRepository = (*PgArticleRepository)(nil)

// PgArticleRepository is a PostgreSQL implementation of ArticleRepository.
type PgArticleRepository struct {
	db DBTX
}

// NewPgArticleRepository creates a new PostgreSQL article repository.
func NewPgArticleRepository(db DBTX) *PgArticleRepository {
	return &PgArticleRepository{db: db}
}

// List returns one page of articles and the total number of matching articles.
func (r *PgArticleRepository) List(ctx context.Context, params domain.ArticleListParams) (*domain.ArticlePage, error) {
	countQuery, pageQuery, args := buildArticleListQueries(params)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0, params.Page.Limit)
	for rows.Next() {
		a := &domain.Article{}
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	return &domain.ArticlePage{TotalCount: total, Articles: articles}, nil
}

// GetByID retrieves a single article with its body and comment count.
func (r *PgArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := scanArticle(r.db.QueryRow(ctx, articleByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("article", strconv.FormatInt(id, 10))
		}
		return nil, mapPgError(err, "article", "get")
	}
	return article, nil
}

// Create inserts a new article and returns its generated id.
func (r *PgArticleRepository) Create(ctx context.Context, article domain.NewArticle) (int64, error) {
	query := `
		INSERT INTO articles (title, topic, author, body, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		article.Title, article.Topic, article.Author, article.Body, article.ArticleImgURL,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "article", "create")
	}

	return id, nil
}

// UpdateVotes adjusts the vote count and returns the updated article.
func (r *PgArticleRepository) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	article, err := scanArticle(r.db.QueryRow(ctx, articleVoteQuery, delta, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapPgError(err, "article", "vote on")
	}
	return article, nil
}

// Delete removes the article's comments and then the article.
//
// If the underlying DBTX can begin a transaction, both statements run in one;
// otherwise they run directly on the DBTX.
func (r *PgArticleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	beginner, ok := r.db.(txBeginner)
	if !ok {
		return r.deleteInTx(ctx, id)
	}

	tx, err := beginner.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for delete: %w", err)
	}

	txRepo := &PgArticleRepository{db: tx}
	deleted, err := txRepo.deleteInTx(ctx, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit article delete: %w", err)
	}
	return deleted, nil
}

// deleteInTx issues the two deletes on the current DBTX.
func (r *PgArticleRepository) deleteInTx(ctx context.Context, id int64) (int64, error) {
	if _, err := r.db.Exec(ctx, "DELETE FROM comments WHERE article_id = $1", id); err != nil {
		return 0, mapPgError(err, "comment", "delete")
	}

	tag, err := r.db.Exec(ctx, "DELETE FROM articles WHERE article_id = $1", id)
	if err != nil {
		return 0, mapPgError(err, "article", "delete")
	}

	return tag.RowsAffected(), nil
}

// scanArticle scans a detail row: the article columns including body, then comment_count.
func scanArticle(row pgx.Row) (*domain.Article, error) {
	a := &domain.Article{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt,
		&a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
