package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDContext(t *testing.T) {
	t.Run("stores and retrieves request ID", func(t *testing.T) {
		ctx := context.Background()
		ctx = WithRequestID(ctx, "req-123")

		result := RequestIDFromContext(ctx)
		assert.Equal(t, "req-123", result)
	})

	t.Run("returns empty string when not set", func(t *testing.T) {
		ctx := context.Background()
		result := RequestIDFromContext(ctx)
		assert.Equal(t, "", result)
	})

	t.Run("ignores values of the wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), requestIDKey, 42)
		assert.Equal(t, "", RequestIDFromContext(ctx))
	})
}

func TestCorrelationIDContext(t *testing.T) {
	t.Run("stores and retrieves correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "corr-1")
		assert.Equal(t, "corr-1", CorrelationIDFromContext(ctx))
	})

	t.Run("returns empty string when not set", func(t *testing.T) {
		assert.Equal(t, "", CorrelationIDFromContext(context.Background()))
	})
}

func TestRequestContextFull(t *testing.T) {
	t.Run("round trips all fields", func(t *testing.T) {
		rc := RequestContext{RequestID: "req-1", CorrelationID: "corr-1"}
		ctx := WithRequestContextFull(context.Background(), rc)

		assert.Equal(t, rc, RequestContextFromContext(ctx))
	})

	t.Run("skips empty fields", func(t *testing.T) {
		ctx := WithRequestContextFull(context.Background(), RequestContext{CorrelationID: "corr-2"})

		got := RequestContextFromContext(ctx)
		assert.Equal(t, "", got.RequestID)
		assert.Equal(t, "corr-2", got.CorrelationID)
	})
}
