// Package service implements the board operations behind the HTTP API.
//
// Operations that need both an existence check and an independent data query
// run the two concurrently with errgroup. The first failure cancels the shared
// context and is the error returned; the other goroutine's result is
// discarded. Deletes and inserts check first.
package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/helixir/news-board-service/internal/domain"
	"github.com/helixir/news-board-service/internal/events"
	"github.com/helixir/news-board-service/internal/observability"
	"github.com/helixir/news-board-service/internal/repository"
)

// DefaultPublishTimeout bounds a single event publish when Dependencies
// leaves PublishTimeout unset.
const DefaultPublishTimeout = 2 * time.Second

// Dependencies are the collaborators a Service is built from.
// Publisher, PublishTimeout and Metrics are optional.
type Dependencies struct {
	Articles       repository.ArticleRepository
	Comments       repository.CommentRepository
	Topics         repository.TopicRepository
	Users          repository.UserRepository
	Checker        repository.ExistenceChecker
	Publisher      events.Publisher
	PublishTimeout time.Duration
	Metrics        *observability.Metrics
}

// Service exposes the board operations.
type Service struct {
	articles  repository.ArticleRepository
	comments  repository.CommentRepository
	topics    repository.TopicRepository
	users     repository.UserRepository
	checker   repository.ExistenceChecker
	publisher events.Publisher
	metrics   *observability.Metrics
	logger    zerolog.Logger

	publishTimeout time.Duration
}

// New creates a new Service.
func New(deps Dependencies, logger zerolog.Logger) *Service {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	publishTimeout := deps.PublishTimeout
	if publishTimeout <= 0 {
		publishTimeout = DefaultPublishTimeout
	}
	return &Service{
		articles:  deps.Articles,
		comments:  deps.Comments,
		topics:    deps.Topics,
		users:     deps.Users,
		checker:   deps.Checker,
		publisher: publisher,
		metrics:   deps.Metrics,
		logger:    logger.With().Str("component", "service").Logger(),

		publishTimeout: publishTimeout,
	}
}

// checkExists runs the existence checker and records the outcome.
func (s *Service) checkExists(ctx context.Context, kind domain.ResourceKind, field string, value any) error {
	err := s.checker.CheckExists(ctx, kind, field, value)
	if s.metrics != nil {
		result := observability.ExistenceFound
		var rnf *domain.ResourceNotFoundError
		switch {
		case err == nil:
		case errors.As(err, &rnf):
			result = observability.ExistenceMissing
		default:
			result = observability.ExistenceError
		}
		s.metrics.RecordExistenceCheck(string(kind), result)
	}
	return err
}

// publish emits a single event after a committed mutation. Failures are
// logged and never returned. The publish outlives a client disconnect but is
// capped by publishTimeout so a slow broker cannot hold the response.
func (s *Service) publish(ctx context.Context, eventType, aggregateType, aggregateID string, payload any) {
	evt, err := domain.NewEvent(eventType, aggregateType, aggregateID, payload)
	if err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("failed to build event")
		return
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pctx, evt); err != nil {
		logger := observability.WithContext(s.logger, ctx)
		logger = observability.WithResourceContext(logger, aggregateType, aggregateID)
		logger = observability.WithEventContext(logger, evt.ID, evt.Type)
		logger.Warn().Err(err).Msg("event not published")
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ListTopics returns all topics.
func (s *Service) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	return s.topics.List(ctx)
}

// CreateTopic validates and stores a new topic.
func (s *Service) CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	if err := topic.Validate(); err != nil {
		return nil, err
	}

	created, err := s.topics.Create(ctx, topic)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordTopicCreated()
	}
	s.publish(ctx, domain.EventTypeTopicCreated, domain.AggregateTypeTopic, created.Slug, topicPayload{
		Slug:        created.Slug,
		Description: created.Description,
	})
	return created, nil
}

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single user. The existence check and the lookup run
// concurrently.
func (s *Service) GetUser(ctx context.Context, username string) (*domain.User, error) {
	var user *domain.User

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.checkExists(gctx, domain.ResourceUsers, domain.KeyUsername, username)
	})
	g.Go(func() error {
		var err error
		user, err = s.users.GetByUsername(gctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewResourceNotFoundError(domain.ResourceUsers, domain.KeyUsername, username)
	}
	return user, nil
}
