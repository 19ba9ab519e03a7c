package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"counsellor/pkg/trace"
)

func TestWithTrace_AttachesTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := trace.WithContext(context.Background(), "abc-123")
	WithTrace(ctx, base).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["trace_id"])
}

func TestWithTrace_NoTraceInContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	WithTrace(context.Background(), base).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	_, present := entries[0].ContextMap()["trace_id"]
	assert.False(t, present)
}
