package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"restate-gateway/internal/core/port"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedRecord struct {
	tag  string
	data port.Fields
}

type fakePoster struct {
	mu      sync.Mutex
	records []postedRecord
	closed  bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, postedRecord{tag: tag, data: message.(port.Fields)})
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"use_case": "GetProperties"}).
		Error("Backend call failed", errors.New("boom"), port.Fields{"limit": 3})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "Backend call failed", line["msg"])
	assert.Equal(t, "GetProperties", line["use_case"])
	assert.Equal(t, float64(3), line["limit"])
	assert.Equal(t, "boom", line["err"])
}

func TestSlogAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	logger.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestFluentLoggerAdapter(t *testing.T) {
	poster := &fakePoster{}
	logger, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)

	scoped := logger.WithFields(port.Fields{"trace_id": "t1"})
	scoped.Debug("dropped", nil)
	scoped.Info("kept", port.Fields{"count": 2})
	scoped.Error("failed", errors.New("boom"), nil)

	require.Len(t, poster.records, 2)
	assert.Equal(t, "info", poster.records[0].tag)
	assert.Equal(t, "kept", poster.records[0].data["message"])
	assert.Equal(t, "t1", poster.records[0].data["trace_id"])
	assert.Equal(t, 2, poster.records[0].data["count"])

	assert.Equal(t, "error", poster.records[1].tag)
	assert.Equal(t, "boom", poster.records[1].data["error"])

	// Поля родителя не должны меняться
	assert.Empty(t, logger.fields)

	require.NoError(t, logger.Close())
	assert.True(t, poster.closed)
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	assert.Error(t, err)
	_, err = NewMultiloggerAdapter(nil)
	assert.Error(t, err)

	first, second := &fakePoster{}, &fakePoster{}
	a, _ := NewFluentLoggerAdapter(first, slog.LevelDebug)
	b, _ := NewFluentLoggerAdapter(second, slog.LevelWarn)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "test"}).Info("hello", nil)
	multi.Warn("careful", nil)

	assert.Len(t, first.records, 2)
	require.Len(t, second.records, 1)
	assert.Equal(t, "careful", second.records[0].data["message"])
	assert.Equal(t, "test", first.records[0].data["component"])
}

func TestMultiLoggerAdapter_CloseClosesFluent(t *testing.T) {
	poster := &fakePoster{}
	fluentLogger, _ := NewFluentLoggerAdapter(poster, nil)
	stdout := NewSlogAdapter(SlogConfig{Writer: &bytes.Buffer{}})

	multi, err := NewMultiloggerAdapter(stdout, nil, fluentLogger)
	require.NoError(t, err)
	assert.Len(t, multi.loggers, 2)

	require.NoError(t, multi.Close())
	assert.True(t, poster.closed)
}
