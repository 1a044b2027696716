package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordCompile(ctx, true, time.Millisecond, 3)
		m.RecordCompile(ctx, false, time.Millisecond, 0)
		m.RecordExpand(ctx, true, time.Millisecond, 42)
		m.RecordExpand(ctx, false, time.Millisecond, 0)
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}
	ctx := context.Background()

	spanCtx, span := sm.StartExpandSpan(ctx, "{var}", "expand-1")
	require.NotNil(t, span)
	assert.Equal(t, ctx, spanCtx, "Expected context unchanged")
	assert.False(t, span.SpanContext().IsValid(), "Expected an invalid (no-op) span context")

	assert.NotPanics(t, func() {
		sm.AddSpanEvent(spanCtx, "event", attribute.String("k", "v"))
		sm.EndSpanWithError(span, nil)
		sm.EndSpanWithError(span, errors.New("boom"))
	})
}
