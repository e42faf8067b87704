package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}
	InitLoggerWithWriter(cfg, &buf)

	slog.Info("test message", "key", "value", "number", 42)
	slog.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	InitLoggerWithWriter(Config{Level: LogLevelDebug, Format: LogFormatText}, &buf)

	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithRequestID(context.Background(), "test-req-123")
	id, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "test-req-123", id)

	FromContext(ctx).Info("hello")
	assert.True(t, strings.Contains(buf.String(), "request_id=test-req-123"), buf.String())
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, GenerateRequestID())
}

func TestConfigLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Config{Level: in}.LogLevel(), in)
	}
}

func TestNewConfigFormatDefaults(t *testing.T) {
	assert.True(t, NewConfig(LogLevelInfo, "", EnvironmentProduction).IsJSON())
	assert.False(t, NewConfig(LogLevelInfo, "", EnvironmentDev).IsJSON())
	assert.True(t, NewConfig(LogLevelInfo, LogFormatJSON, EnvironmentDev).IsJSON())
	assert.True(t, NewConfig(LogLevelDebug, "", EnvironmentDev).AddSource)
}
