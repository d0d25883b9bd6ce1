package service

import (
	"context"
	"sync"

	"github.com/helixir/news-board-service/internal/domain"
)

// mockArticleRepo implements repository.ArticleRepository for service tests.
type mockArticleRepo struct {
	listFn        func(ctx context.Context, params domain.ArticleListParams) (*domain.ArticlePage, error)
	getByIDFn     func(ctx context.Context, id int64) (*domain.Article, error)
	createFn      func(ctx context.Context, article domain.NewArticle) (int64, error)
	updateVotesFn func(ctx context.Context, id int64, delta int) (*domain.Article, error)
	deleteFn      func(ctx context.Context, id int64) (int64, error)
}

func (m *mockArticleRepo) List(ctx context.Context, params domain.ArticleListParams) (*domain.ArticlePage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, params)
	}
	return &domain.ArticlePage{Articles: []*domain.Article{}}, nil
}

func (m *mockArticleRepo) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.NewNotFoundError("article", formatID(id))
}

func (m *mockArticleRepo) Create(ctx context.Context, article domain.NewArticle) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, article)
	}
	return 0, nil
}

func (m *mockArticleRepo) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	if m.updateVotesFn != nil {
		return m.updateVotesFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *mockArticleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, nil
}

// mockCommentRepo implements repository.CommentRepository for service tests.
type mockCommentRepo struct {
	listByArticleFn func(ctx context.Context, articleID int64, page domain.Page) ([]*domain.Comment, error)
	createFn        func(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error)
	updateVotesFn   func(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	deleteFn        func(ctx context.Context, id int64) (int64, error)
}

func (m *mockCommentRepo) ListByArticle(ctx context.Context, articleID int64, page domain.Page) ([]*domain.Comment, error) {
	if m.listByArticleFn != nil {
		return m.listByArticleFn(ctx, articleID, page)
	}
	return []*domain.Comment{}, nil
}

func (m *mockCommentRepo) Create(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, articleID, comment)
	}
	return nil, nil
}

func (m *mockCommentRepo) UpdateVotes(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	if m.updateVotesFn != nil {
		return m.updateVotesFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, nil
}

// mockTopicRepo implements repository.TopicRepository for service tests.
type mockTopicRepo struct {
	listFn   func(ctx context.Context) ([]*domain.Topic, error)
	createFn func(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
}

func (m *mockTopicRepo) List(ctx context.Context) ([]*domain.Topic, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*domain.Topic{}, nil
}

func (m *mockTopicRepo) Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	if m.createFn != nil {
		return m.createFn(ctx, topic)
	}
	return &topic, nil
}

// mockUserRepo implements repository.UserRepository for service tests.
type mockUserRepo struct {
	listFn          func(ctx context.Context) ([]*domain.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*domain.User{}, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

// mockChecker implements repository.ExistenceChecker. Keys listed in missing
// are reported as not found; everything else exists.
type mockChecker struct {
	mu      sync.Mutex
	missing map[string]bool
	err     error
	calls   []string
}

func (m *mockChecker) CheckExists(_ context.Context, kind domain.ResourceKind, field string, value any) error {
	key := domain.NewResourceNotFoundError(kind, field, value).Error()

	m.mu.Lock()
	m.calls = append(m.calls, key)
	m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	if m.missing[key] {
		return domain.NewResourceNotFoundError(kind, field, value)
	}
	return nil
}

func (m *mockChecker) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// missingKey builds the mockChecker key for a row that should not exist.
func missingKey(kind domain.ResourceKind, field string, value any) string {
	return domain.NewResourceNotFoundError(kind, field, value).Error()
}

// recordingPublisher implements events.Publisher and keeps every event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...*domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// blockingPublisher waits for its context to end, like a writer retrying
// against an unreachable broker.
type blockingPublisher struct {
	done chan error
}

func (p *blockingPublisher) Publish(ctx context.Context, _ ...*domain.Event) error {
	<-ctx.Done()
	p.done <- ctx.Err()
	return ctx.Err()
}

func (p *blockingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
