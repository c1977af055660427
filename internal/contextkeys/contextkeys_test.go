package contextkeys

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFromContext_DefaultsToNoop(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	require.NotNil(t, logger)

	// no-op логгер не должен паниковать и возвращает сам себя
	logger.Info("msg", nil)
	logger.Error("msg", assert.AnError, nil)
	assert.Equal(t, logger, logger.WithFields(nil))
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))

	ctx, traceID := ContextWithNewTraceID(context.Background())
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, traceID, TraceIDFromContext(ctx))
}
