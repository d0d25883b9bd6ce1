// Package httpserver provides the HTTP REST API server for the news board service.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/helixir/news-board-service/internal/database"
	"github.com/helixir/news-board-service/internal/domain"
	"github.com/helixir/news-board-service/internal/observability"
)

// BoardService is the set of board operations the HTTP handlers call.
// It is satisfied by *service.Service.
type BoardService interface {
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
	CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error)

	ListArticles(ctx context.Context, q domain.ArticleListQuery) (*domain.ArticlePage, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	CreateArticle(ctx context.Context, article domain.NewArticle) (*domain.Article, error)
	VoteArticle(ctx context.Context, id int64, delta int) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id int64) error

	ListArticleComments(ctx context.Context, articleID int64, p, limit string) ([]*domain.Comment, error)
	AddComment(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error)
	VoteComment(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

// healthChecker reports database health. *database.DB satisfies it.
type healthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

// Server is the HTTP REST API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	board      BoardService
	health     healthChecker
	validate   *validator.Validate
	metrics    *observability.Metrics
	logger     zerolog.Logger
}

// Config holds HTTP server configuration.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer creates a new HTTP server with all dependencies.
// metrics may be nil.
func NewServer(
	cfg Config,
	board BoardService,
	health healthChecker,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Server {
	s := &Server{
		board:    board,
		health:   health,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  metrics,
		logger:   logger.With().Str("component", "http-server").Logger(),
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Set before any route so mounted subrouters inherit them.
	r.NotFound(invalidURLHandler)
	r.MethodNotAllowed(invalidURLHandler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware)
	r.Use(s.requestLogMiddleware)
	r.Use(jsonContentTypeMiddleware)

	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.getEndpoints)

		r.Get("/topics", s.listTopics)
		r.Post("/topics", s.createTopic)

		r.Get("/articles", s.listArticles)
		r.Post("/articles", s.createArticle)
		r.Get("/articles/{article_id}", s.getArticle)
		r.Patch("/articles/{article_id}", s.voteArticle)
		r.Delete("/articles/{article_id}", s.deleteArticle)
		r.Get("/articles/{article_id}/comments", s.listArticleComments)
		r.Post("/articles/{article_id}/comments", s.addComment)

		r.Patch("/comments/{comment_id}", s.voteComment)
		r.Delete("/comments/{comment_id}", s.deleteComment)

		r.Get("/users", s.listUsers)
		r.Get("/users/{username}", s.getUser)
	})

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// healthHandler reports liveness: the database answers a ping.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.health.Health(r.Context())
	if health.Status == database.StatusHealthy {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
		"error":    health.Error,
	})
}

// readinessHandler reports whether the service can take traffic: the
// database answers and the board schema is migrated.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	health := s.health.Health(r.Context())
	if !health.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":       "not_ready",
			"database":     health.Status,
			"schema_ready": health.SchemaReady,
			"error":        health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ready",
		"database":     health.Status,
		"schema_ready": true,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeMsg writes the {"msg": ...} body every error response uses.
func writeMsg(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, map[string]string{"msg": msg})
}

func invalidURLHandler(w http.ResponseWriter, _ *http.Request) {
	writeMsg(w, http.StatusNotFound, msgInvalidURL)
}
