package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Existence check outcomes used as the result label.
const (
	ExistenceFound   = "found"
	ExistenceMissing = "missing"
	ExistenceError   = "error"
)

// Metrics contains all Prometheus metrics for the news board service.
// Metrics are organized by subsystem: http, existence checks, board mutations,
// and event publishing. All counters and histograms are registered via promauto
// with the default Prometheus registry.
type Metrics struct {
	// HTTPRequestsTotal counts served requests, labeled by method, route pattern, and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency in seconds, labeled by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	// ExistenceChecks counts existence lookups, labeled by resource and result.
	ExistenceChecks *prometheus.CounterVec

	// ArticlesCreated counts articles posted.
	ArticlesCreated prometheus.Counter

	// ArticlesDeleted counts articles removed together with their comments.
	ArticlesDeleted prometheus.Counter

	// CommentsCreated counts comments posted.
	CommentsCreated prometheus.Counter

	// CommentsDeleted counts comments removed.
	CommentsDeleted prometheus.Counter

	// TopicsCreated counts topics created.
	TopicsCreated prometheus.Counter

	// VotesCast counts vote adjustments, labeled by resource.
	VotesCast *prometheus.CounterVec

	// EventsPublished counts events delivered to the broker, labeled by event type.
	EventsPublished *prometheus.CounterVec

	// EventsFailed counts events that could not be delivered, labeled by event type.
	EventsFailed *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		// HTTP
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		// Existence checks
		ExistenceChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "existence_checks_total",
			Help:      "Total number of resource existence checks by resource and result",
		}, []string{"resource", "result"}),

		// Board mutations
		ArticlesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_created_total",
			Help:      "Total number of articles created",
		}),
		ArticlesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_deleted_total",
			Help:      "Total number of articles deleted",
		}),
		CommentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comments_created_total",
			Help:      "Total number of comments created",
		}),
		CommentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comments_deleted_total",
			Help:      "Total number of comments deleted",
		}),
		TopicsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "topics_created_total",
			Help:      "Total number of topics created",
		}),
		VotesCast: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Total number of vote adjustments by resource",
		}, []string{"resource"}),

		// Events
		EventsPublished: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of events published by type",
		}, []string{"type"}),
		EventsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_failed_total",
			Help:      "Total number of events that failed to publish by type",
		}, []string{"type"}),
	}
}

// RecordHTTPRequest records a served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordExistenceCheck records the outcome of an existence lookup.
func (m *Metrics) RecordExistenceCheck(resource, result string) {
	m.ExistenceChecks.WithLabelValues(resource, result).Inc()
}

// RecordArticleCreated records a new article.
func (m *Metrics) RecordArticleCreated() {
	m.ArticlesCreated.Inc()
}

// RecordArticleDeleted records a deleted article.
func (m *Metrics) RecordArticleDeleted() {
	m.ArticlesDeleted.Inc()
}

// RecordCommentCreated records a new comment.
func (m *Metrics) RecordCommentCreated() {
	m.CommentsCreated.Inc()
}

// RecordCommentDeleted records a deleted comment.
func (m *Metrics) RecordCommentDeleted() {
	m.CommentsDeleted.Inc()
}

// RecordTopicCreated records a new topic.
func (m *Metrics) RecordTopicCreated() {
	m.TopicsCreated.Inc()
}

// RecordVote records a vote adjustment on an article or comment.
func (m *Metrics) RecordVote(resource string) {
	m.VotesCast.WithLabelValues(resource).Inc()
}

// RecordEventPublished records a delivered event.
func (m *Metrics) RecordEventPublished(eventType string) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

// RecordEventFailed records an event that could not be delivered.
func (m *Metrics) RecordEventFailed(eventType string) {
	m.EventsFailed.WithLabelValues(eventType).Inc()
}
