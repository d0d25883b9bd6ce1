package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event type constants for board events.
const (
	EventTypeArticleCreated = "article.created"
	EventTypeArticleVoted   = "article.voted"
	EventTypeArticleDeleted = "article.deleted"
	EventTypeCommentCreated = "comment.created"
	EventTypeCommentVoted   = "comment.voted"
	EventTypeCommentDeleted = "comment.deleted"
	EventTypeTopicCreated   = "topic.created"
)

// Aggregate types carried on events.
const (
	AggregateTypeArticle = "article"
	AggregateTypeComment = "comment"
	AggregateTypeTopic   = "topic"
)

// Event records a committed mutation so other services can react to it.
type Event struct {
	ID            string
	Version       int
	Type          string
	AggregateType string
	AggregateID   string
	Payload       json.RawMessage
	OccurredAt    time.Time
}

// NewEvent creates a new event with the given parameters.
// The payload is JSON-serialized automatically.
func NewEvent(eventType, aggregateType, aggregateID string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Version:       1,
		Type:          eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       payloadBytes,
		OccurredAt:    time.Now().UTC(),
	}, nil
}
