package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/helixir/news-board-service/internal/domain"
)

// ListArticles validates q and returns one page of articles. When a topic is
// given its existence is checked alongside the listing, so an unknown topic
// is a not-found error rather than an empty page.
func (s *Service) ListArticles(ctx context.Context, q domain.ArticleListQuery) (*domain.ArticlePage, error) {
	params, err := domain.ParseArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	var page *domain.ArticlePage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.articles.List(gctx, params)
		return err
	})
	if params.Topic != "" {
		g.Go(func() error {
			return s.checkExists(gctx, domain.ResourceTopics, domain.KeySlug, params.Topic)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

// GetArticle returns a single article with its body and comment count.
func (s *Service) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articles.GetByID(ctx, id)
}

// CreateArticle validates and stores a new article, then re-reads it so the
// response carries created_at and comment_count.
func (s *Service) CreateArticle(ctx context.Context, article domain.NewArticle) (*domain.Article, error) {
	if err := article.Validate(); err != nil {
		return nil, err
	}

	id, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	created, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordArticleCreated()
	}
	s.publish(ctx, domain.EventTypeArticleCreated, domain.AggregateTypeArticle, formatID(id), articlePayload{
		ArticleID: id,
		Title:     created.Title,
		Topic:     created.Topic,
		Author:    created.Author,
	})
	return created, nil
}

// VoteArticle adds delta to an article's votes.
func (s *Service) VoteArticle(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	var article *domain.Article

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.checkExists(gctx, domain.ResourceArticles, domain.KeyArticleID, id)
	})
	g.Go(func() error {
		var err error
		article, err = s.articles.UpdateVotes(gctx, id, delta)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Deleted between the check and the update.
	if article == nil {
		return nil, domain.NewNotFoundError("article", formatID(id))
	}

	if s.metrics != nil {
		s.metrics.RecordVote(string(domain.ResourceArticles))
	}
	s.publish(ctx, domain.EventTypeArticleVoted, domain.AggregateTypeArticle, formatID(id), votePayload{
		ID:    id,
		Delta: delta,
		Votes: article.Votes,
	})
	return article, nil
}

// DeleteArticle removes an article and all of its comments.
func (s *Service) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.checkExists(ctx, domain.ResourceArticles, domain.KeyArticleID, id); err != nil {
		return err
	}

	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.NewNotFoundError("article", formatID(id))
	}

	if s.metrics != nil {
		s.metrics.RecordArticleDeleted()
	}
	s.publish(ctx, domain.EventTypeArticleDeleted, domain.AggregateTypeArticle, formatID(id), deletePayload{ID: id})
	return nil
}
