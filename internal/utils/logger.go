package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level   string
	Format  string // "pretty" or "json"
	Output  io.Writer
	Verbose bool
}

// NewLogger creates a new logger with the given options
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    !IsTerminal(output),
		}
	}

	level := parseLogLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// parseLogLevel maps a configured level to zerolog, defaulting to info
func parseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// WithInput returns a logger describing one declared input: its kind,
// provenance title and the output bucket it feeds. Inputs outside every
// bucket omit the bucket field.
func (l *Logger) WithInput(kind, title string, bucket int) *Logger {
	ctx := l.Logger.With().
		Str("kind", kind).
		Str("manifest", title)
	if bucket >= 0 {
		ctx = ctx.Int("bucket", bucket)
	}
	return &Logger{Logger: ctx.Logger()}
}

// WithOutput returns a logger with an output field
func (l *Logger) WithOutput(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("output", path).Logger(),
	}
}
