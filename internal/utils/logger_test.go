package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("custom output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "json",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
	})

	t.Run("pretty format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:  "info",
			Format: "pretty",
			Output: &buf,
		})
		require.NotNil(t, logger)
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
	})

	t.Run("verbose option", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{
			Level:   "warn",
			Format:  "json",
			Output:  &buf,
			Verbose: true,
		})
		require.NotNil(t, logger)
		// Verbose should enable debug level
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})

	t.Run("nop logger", func(t *testing.T) {
		logger := NewNopLogger()
		require.NotNil(t, logger)
		assert.NotPanics(t, func() {
			logger.Error().Msg("discarded")
		})
	})
}

func TestLoggerWithComponent(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	componentLogger := logger.WithComponent("assembler")
	require.NotNil(t, componentLogger)

	componentLogger.Info().Msg("test message")
	output := buf.String()
	assert.Contains(t, output, `"component":"assembler"`)
	assert.Contains(t, output, "test message")
}

func TestLoggerChaining(t *testing.T) {

	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	chained := logger.WithComponent("writer").WithOutput("out.manifest")
	require.NotNil(t, chained)

	chained.Info().Msg("chained test")
	output := buf.String()

	assert.Contains(t, output, `"component":"writer"`)
	assert.Contains(t, output, `"output":"out.manifest"`)
	assert.Contains(t, output, "chained test")
}

func TestLoggerWithInput(t *testing.T) {
	tests := []struct {
		name       string
		bucket     int
		wantBucket bool
	}{
		{name: "first output", bucket: 0, wantBucket: true},
		{name: "later output", bucket: 3, wantBucket: true},
		{name: "no output", bucket: -1, wantBucket: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{
				Level:  "info",
				Format: "json",
				Output: &buf,
			})

			logger.WithInput("entry", "cli", tt.bucket).Info().Msg("ingested")

			var fields map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
			assert.Equal(t, "entry", fields["kind"])
			assert.Equal(t, "cli", fields["manifest"])
			if tt.wantBucket {
				assert.EqualValues(t, tt.bucket, fields["bucket"])
			} else {
				assert.NotContains(t, fields, "bucket")
			}
		})
	}
}

func TestLoggerPrettyNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:  "info",
		Format: "pretty",
		Output: &buf,
	})

	logger.Info().Msg("plain")
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "plain")
}

func TestLoggerLevels(t *testing.T) {

	tests := []struct {
		name      string
		level     string
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{
			name:      "debug level logs debug",
			level:     "debug",
			logFunc:   func(l *Logger) { l.Debug().Msg("debug") },
			shouldLog: true,
		},
		{
			name:      "info level doesn't log debug",
			level:     "info",
			logFunc:   func(l *Logger) { l.Debug().Msg("debug") },
			shouldLog: false,
		},
		{
			name:      "warn level doesn't log info",
			level:     "warn",
			logFunc:   func(l *Logger) { l.Info().Msg("info") },
			shouldLog: false,
		},
		{
			name:      "warn level logs warn",
			level:     "warn",
			logFunc:   func(l *Logger) { l.Warn().Msg("warn") },
			shouldLog: true,
		},
		{
			name:      "error level logs error",
			level:     "error",
			logFunc:   func(l *Logger) { l.Error().Msg("error") },
			shouldLog: true,
		},
		{
			name:      "unknown level falls back to info",
			level:     "chatty",
			logFunc:   func(l *Logger) { l.Info().Msg("info") },
			shouldLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{
				Level:  tt.level,
				Format: "json",
				Output: &buf,
			})

			tt.logFunc(logger)
			output := buf.String()

			if tt.shouldLog {
				assert.NotEmpty(t, output)
			} else {
				assert.Empty(t, output)
			}
		})
	}
}
