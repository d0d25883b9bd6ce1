package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/helixir/news-board-service/internal/domain"
)

// ListArticleComments returns one page of an article's comments, newest first.
func (s *Service) ListArticleComments(ctx context.Context, articleID int64, p, limit string) ([]*domain.Comment, error) {
	page, err := domain.ParsePage(p, limit)
	if err != nil {
		return nil, err
	}

	var comments []*domain.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.checkExists(gctx, domain.ResourceArticles, domain.KeyArticleID, articleID)
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticle(gctx, articleID, page)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return comments, nil
}

// AddComment posts a comment under an article. The article is checked before
// the insert so a missing article is reported as such and not as a foreign
// key violation.
func (s *Service) AddComment(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkExists(ctx, domain.ResourceArticles, domain.KeyArticleID, articleID); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, articleID, comment)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordCommentCreated()
	}
	s.publish(ctx, domain.EventTypeCommentCreated, domain.AggregateTypeComment, formatID(created.ID), commentPayload{
		CommentID: created.ID,
		ArticleID: articleID,
		Author:    created.Author,
	})
	return created, nil
}

// VoteComment adds delta to a comment's votes.
func (s *Service) VoteComment(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	var comment *domain.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.checkExists(gctx, domain.ResourceComments, domain.KeyCommentID, id)
	})
	g.Go(func() error {
		var err error
		comment, err = s.comments.UpdateVotes(gctx, id, delta)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if comment == nil {
		return nil, domain.NewResourceNotFoundError(domain.ResourceComments, domain.KeyCommentID, id)
	}

	if s.metrics != nil {
		s.metrics.RecordVote(string(domain.ResourceComments))
	}
	s.publish(ctx, domain.EventTypeCommentVoted, domain.AggregateTypeComment, formatID(id), votePayload{
		ID:    id,
		Delta: delta,
		Votes: comment.Votes,
	})
	return comment, nil
}

// DeleteComment removes a single comment. The check runs before the delete:
// a concurrent lookup could miss a row the delete has already removed.
func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	if err := s.checkExists(ctx, domain.ResourceComments, domain.KeyCommentID, id); err != nil {
		return err
	}

	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.NewResourceNotFoundError(domain.ResourceComments, domain.KeyCommentID, id)
	}

	if s.metrics != nil {
		s.metrics.RecordCommentDeleted()
	}
	s.publish(ctx, domain.EventTypeCommentDeleted, domain.AggregateTypeComment, formatID(id), deletePayload{ID: id})
	return nil
}
