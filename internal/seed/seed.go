// Package seed loads the bundled board datasets into an empty schema.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

//go:embed data/*.json
var datasets embed.FS

// Names of the bundled datasets.
const (
	DatasetTest        = "test"
	DatasetDevelopment = "development"
)

// Dataset is the full contents of the four board tables.
type Dataset struct {
	Topics   []TopicRecord   `json:"topics"`
	Users    []UserRecord    `json:"users"`
	Articles []ArticleRecord `json:"articles"`
	Comments []CommentRecord `json:"comments"`
}

// TopicRecord is one row of the topics table.
type TopicRecord struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// UserRecord is one row of the users table.
type UserRecord struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleRecord is one row of the articles table. Article ids are assigned
// in file order starting from 1.
type ArticleRecord struct {
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// CommentRecord is one row of the comments table. Article is the 1-based
// position of the parent in Dataset.Articles.
type CommentRecord struct {
	Article   int       `json:"article"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Load reads a bundled dataset by name.
func Load(name string) (*Dataset, error) {
	raw, err := datasets.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown dataset %q: %w", name, err)
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %q: %w", name, err)
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset %q: %w", name, err)
	}
	return &ds, nil
}

func (d *Dataset) validate() error {
	for i, c := range d.Comments {
		if c.Article < 1 || c.Article > len(d.Articles) {
			return fmt.Errorf("comment %d references article %d of %d", i+1, c.Article, len(d.Articles))
		}
	}
	return nil
}

// Beginner opens a transaction. *database.DB and *pgxpool.Pool satisfy it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Seeder replaces the board tables with a dataset.
type Seeder struct {
	db     Beginner
	logger zerolog.Logger
}

// NewSeeder creates a new Seeder.
func NewSeeder(db Beginner, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

const truncateQuery = "TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE"

// Seed truncates all board tables and inserts ds in a single transaction.
// Either the whole dataset is written or nothing changes.
func (s *Seeder) Seed(ctx context.Context, ds *Dataset) error {
	if err := ds.validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := s.insertAll(ctx, tx, ds); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Error().Err(rbErr).Msg("failed to rollback seed transaction")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.Info().
		Int("topics", len(ds.Topics)).
		Int("users", len(ds.Users)).
		Int("articles", len(ds.Articles)).
		Int("comments", len(ds.Comments)).
		Msg("database seeded")
	return nil
}

func (s *Seeder) insertAll(ctx context.Context, tx pgx.Tx, ds *Dataset) error {
	if _, err := tx.Exec(ctx, truncateQuery); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	for _, t := range ds.Topics {
		if _, err := tx.Exec(ctx,
			"INSERT INTO topics (slug, description) VALUES ($1, $2)",
			t.Slug, t.Description,
		); err != nil {
			return fmt.Errorf("failed to insert topic %s: %w", t.Slug, err)
		}
	}

	for _, u := range ds.Users {
		if _, err := tx.Exec(ctx,
			"INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)",
			u.Username, u.Name, u.AvatarURL,
		); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.Username, err)
		}
	}

	articleIDs := make([]int64, len(ds.Articles))
	for i, a := range ds.Articles {
		err := tx.QueryRow(ctx, `
			INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING article_id`,
			a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, a.ArticleImgURL,
		).Scan(&articleIDs[i])
		if err != nil {
			return fmt.Errorf("failed to insert article %q: %w", a.Title, err)
		}
	}

	for i, c := range ds.Comments {
		if _, err := tx.Exec(ctx, `
			INSERT INTO comments (body, author, article_id, votes, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			c.Body, c.Author, articleIDs[c.Article-1], c.Votes, c.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert comment %d: %w", i+1, err)
		}
	}

	return nil
}
