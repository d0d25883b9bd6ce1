package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/helixir/news-board-service/internal/domain"
	"github.com/helixir/news-board-service/internal/observability"
)

// HeaderEventType is the Kafka header carrying the event type.
const HeaderEventType = "event_type"

// defaultSource identifies this service in the envelope metadata.
const defaultSource = "news-board-service"

// Config holds configuration for the Kafka publisher.
type Config struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string
	// Topic receives every board event.
	Topic string
	// Source overrides the metadata source name (optional).
	Source string
	// WriteTimeout bounds a single write (optional).
	WriteTimeout time.Duration
	// MaxAttempts caps produce attempts per batch (optional).
	MaxAttempts int
	// BatchSize caps messages per produce request (optional).
	BatchSize int
	// BatchTimeout bounds how long a partial batch waits (optional).
	BatchTimeout time.Duration
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Compile-time interface verification.
var _ Publisher = (*KafkaPublisher)(nil)

// KafkaPublisher writes events to a single Kafka topic, keyed by aggregate ID
// so all events of one article or comment land on the same partition.
type KafkaPublisher struct {
	writer  messageWriter
	source  string
	metrics *observability.Metrics
	logger  zerolog.Logger
}

// NewKafkaPublisher creates a publisher backed by a kafka.Writer.
func NewKafkaPublisher(cfg Config, metrics *observability.Metrics, logger zerolog.Logger) *KafkaPublisher {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 10 * time.Second
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           writeTimeout,
		MaxAttempts:            maxAttempts,
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}

	return newKafkaPublisher(writer, cfg.Source, metrics, logger)
}

func newKafkaPublisher(w messageWriter, source string, metrics *observability.Metrics, logger zerolog.Logger) *KafkaPublisher {
	if source == "" {
		source = defaultSource
	}
	return &KafkaPublisher{
		writer:  w,
		source:  source,
		metrics: metrics,
		logger:  logger.With().Str("component", "kafka_publisher").Logger(),
	}
}

// envelope is the JSON value of every Kafka message.
type envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Version       int             `json:"version"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
	Metadata      metadata        `json:"metadata"`
}

type metadata struct {
	Source        string `json:"source"`
	RequestID     string `json:"request_id,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Publish writes all events in a single batch. A failed batch is logged and
// counted against every event in it before the error is returned.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	rc := observability.RequestContextFromContext(ctx)
	msgs := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		value, err := json.Marshal(envelope{
			EventID:       evt.ID,
			EventType:     evt.Type,
			Version:       evt.Version,
			AggregateType: evt.AggregateType,
			AggregateID:   evt.AggregateID,
			OccurredAt:    evt.OccurredAt,
			Payload:       evt.Payload,
			Metadata: metadata{
				Source:        p.source,
				RequestID:     rc.RequestID,
				CorrelationID: rc.CorrelationID,
			},
		})
		if err != nil {
			p.recordFailure(err, events)
			return fmt.Errorf("marshal event %s: %w", evt.ID, err)
		}

		msgs = append(msgs, kafka.Message{
			Key:     []byte(evt.AggregateID),
			Value:   value,
			Headers: []kafka.Header{{Key: HeaderEventType, Value: []byte(evt.Type)}},
			Time:    evt.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.recordFailure(err, events)
		return fmt.Errorf("write events: %w", err)
	}

	for _, evt := range events {
		if p.metrics != nil {
			p.metrics.RecordEventPublished(evt.Type)
		}
		logger := observability.WithEventContext(p.logger, evt.ID, evt.Type)
		logger.Debug().Str("aggregate_id", evt.AggregateID).Msg("event published")
	}
	return nil
}

func (p *KafkaPublisher) recordFailure(err error, events []*domain.Event) {
	for _, evt := range events {
		if p.metrics != nil {
			p.metrics.RecordEventFailed(evt.Type)
		}
		logger := observability.WithEventContext(p.logger, evt.ID, evt.Type)
		logger.Error().Err(err).Str("aggregate_id", evt.AggregateID).Msg("failed to publish event")
	}
}

// Close flushes pending writes and closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	p.logger.Info().Msg("closing kafka publisher")
	return p.writer.Close()
}
