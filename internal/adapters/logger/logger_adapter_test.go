package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Akergez/2572371-six-cities-4/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	tags     []string
	messages []map[string]interface{}
	closed   bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, map[string]interface{}(message.(port.Fields)))
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"use_case": "ListFavorites"}).
		Error("boom", errors.New("db down"), port.Fields{"user_id": "u1"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "ListFavorites", entry["use_case"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "db down", entry["error"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "shown")
}

func TestFluentLoggerAdapter(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)

	id := uuid.New()
	logger := adapter.WithFields(port.Fields{"offer_id": id})
	logger.Debug("dropped", nil)
	logger.Info("kept", port.Fields{"count": 2})
	logger.Error("failed", errors.New("nope"), nil)

	require.Len(t, poster.messages, 2)
	assert.Equal(t, []string{"info", "error"}, poster.tags)
	assert.Equal(t, "kept", poster.messages[0]["message"])
	assert.Equal(t, id.String(), poster.messages[0]["offer_id"])
	assert.Equal(t, 2, poster.messages[0]["count"])
	assert.Equal(t, "nope", poster.messages[1]["error"])

	require.NoError(t, adapter.Close())
	assert.True(t, poster.closed)
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter_FansOut(t *testing.T) {
	first, second := &fakePoster{}, &fakePoster{}
	a, err := NewFluentLoggerAdapter(first, slog.LevelDebug)
	require.NoError(t, err)
	b, err := NewFluentLoggerAdapter(second, slog.LevelDebug)
	require.NoError(t, err)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t-1"}).Warn("careful", nil)

	for _, poster := range []*fakePoster{first, second} {
		require.Len(t, poster.messages, 1)
		assert.Equal(t, "t-1", poster.messages[0]["trace_id"])
		assert.Equal(t, "warn", poster.tags[0])
	}

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}

func TestPkgLoggerBridge_PairsKeysAndValues(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelDebug)
	require.NoError(t, err)

	bridge := NewPkgLoggerBridge(adapter)
	bridge.Info("connected", "url", "amqp://localhost", 42, "ignored", "dangling")
	bridge.Error(errors.New("closed"), "channel lost", "attempt", 3)

	require.Len(t, poster.messages, 2)
	assert.Equal(t, "amqp://localhost", poster.messages[0]["url"])
	assert.NotContains(t, poster.messages[0], "dangling")
	assert.Equal(t, 3, poster.messages[1]["attempt"])
	assert.Equal(t, "closed", poster.messages[1]["error"])
}
