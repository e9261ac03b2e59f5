package logging

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"INFO", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"ERROR", ErrorLevel},
		{"", InfoLevel},
		{"nonsense", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	config := LogConfig{
		Level:  WarnLevel,
		Output: &buf,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", nil)

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	config := LogConfig{
		Level:  DebugLevel,
		Output: &buf,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)

	enriched := logger.WithFields(
		Field{"service", "webhook-guard"},
		Field{"version", "1.0.0"},
	)
	enriched.Info("test message", Field{"request_id", "123"})

	output := buf.String()
	assert.Contains(t, output, "webhook-guard")
	assert.Contains(t, output, "1.0.0")
	assert.Contains(t, output, "123")
	assert.Contains(t, output, "test message")
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	config := LogConfig{
		Level:  DebugLevel,
		Output: &buf,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	logger.WithContext(ctx).Info("context message")

	output := buf.String()
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
	assert.Contains(t, output, "context message")
}

func TestLogger_WithContext_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	config := LogConfig{
		Level:  DebugLevel,
		Output: &buf,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)

	logger.WithContext(context.Background()).Info("context message")

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.NotContains(t, output, "request_id")
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	ctx = ContextWithRequestID(ctx, "req-456")
	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-456", id)
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	config := LogConfig{
		Level:  DebugLevel,
		Output: &buf,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)

	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	SetGlobalLogger(logger)
	assert.Equal(t, logger, GetGlobalLogger())

	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error", errors.New("boom"))

	output := buf.String()
	assert.Contains(t, output, "global debug")
	assert.Contains(t, output, "global info")
	assert.Contains(t, output, "global warn")
	assert.Contains(t, output, "global error")
	assert.Contains(t, output, "boom")
}

func TestGlobalConveniences(t *testing.T) {
	var buf bytes.Buffer
	config := LogConfig{
		Level:  DebugLevel,
		Output: &buf,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)

	original := GetGlobalLogger()
	defer SetGlobalLogger(original)
	SetGlobalLogger(logger)

	WithFields(Field{"component", "test"}).Info("fields message")
	WithContext(ContextWithRequestID(context.Background(), "req-1")).Info("context message")

	output := buf.String()
	assert.Contains(t, output, "component")
	assert.Contains(t, output, "fields message")
	assert.Contains(t, output, "req-1")
	assert.Contains(t, output, "context message")
}

func TestInitGlobalLogger_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	InitGlobalLogger("debug", logFile)
	Info("written to file")
	MustSync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Logger initialized")
	assert.Contains(t, string(data), "written to file")
}

func TestErrFieldHelpers(t *testing.T) {
	err := errors.New("kaboom")

	field := Err(err)
	assert.Equal(t, "error", field.Key)
	assert.Equal(t, err, field.Value)

	named := NamedError("cause", err)
	assert.Equal(t, "cause", named.Key)
	assert.Equal(t, err, named.Value)
}

func TestDefaultLogConfig(t *testing.T) {
	config := DefaultLogConfig()

	assert.Nil(t, config.Output)
	assert.Equal(t, time.RFC3339, config.TimeFormat)
	assert.Equal(t, "", config.Prefix)
}
