// Package observability provides logging, metrics, and request context
// support for the news board service.
//
// # Logging
//
// Create a logger from configuration:
//
//	logger := observability.NewLogger(observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	})
//
// Add request or resource fields:
//
//	logger = observability.WithRequestContext(logger, requestID, r.Method, r.URL.Path)
//	logger = observability.WithResourceContext(logger, "articles", "42")
//	logger = observability.WithContext(logger, ctx) // request_id, correlation_id
//
// # Metrics
//
//	metrics := observability.NewMetrics("news_board")
//	metrics.RecordExistenceCheck("topics", observability.ExistenceMissing)
//	metrics.RecordEventPublished("article.created")
//
// # Context Helpers
//
//	ctx = observability.WithRequestID(ctx, requestID)
//	ctx = observability.WithCorrelationID(ctx, correlationID)
//
// # Standard Fields
//
//   - service: always news-board-service
//   - request_id: chi request identifier
//   - correlation_id: cross-service correlation identifier
//   - resource, resource_id: board resource being acted on
//   - event_id, event_type: published event
//
// All components are safe for concurrent use from multiple goroutines.
package observability
