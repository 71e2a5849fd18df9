package testutil

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quantmind-br/buildmanifest/internal/utils"
)

// NewTestLogger creates a logger that discards output but tags it with the
// test name
func NewTestLogger(t *testing.T) *utils.Logger {
	t.Helper()

	zlogger := zerolog.New(io.Discard).With().
		Timestamp().
		Str("test", t.Name()).
		Logger()

	return &utils.Logger{Logger: zlogger}
}

// NewBufferLogger creates a debug-level JSON logger writing to w
func NewBufferLogger(w io.Writer) *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: w,
	})
}
