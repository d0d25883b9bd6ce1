// Package events publishes board events after a mutation commits.
//
// Publishing is best-effort: the mutation has already been written when an
// event is sent, so a broker failure is logged and counted by the publisher
// and never reported back to the HTTP client.
package events

import (
	"context"

	"github.com/helixir/news-board-service/internal/domain"
)

// Publisher sends events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, events ...*domain.Event) error
	Close() error
}

// Compile-time interface verification.
var _ Publisher = NopPublisher{}

// NopPublisher drops every event. It is used when Kafka is disabled.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, ...*domain.Event) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
