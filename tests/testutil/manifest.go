package testutil

import (
	"strings"
	"testing"
)

// WriteManifest writes a manifest file holding one newline-terminated line
// per entry string, e.g. "{debug}bin/x=src/x".
func WriteManifest(t *testing.T, path string, lines ...string) string {
	t.Helper()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return WriteFile(t, path, b.String())
}

// ReadLines returns the lines of the file at path, without newlines
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	content := ReadFile(t, path)
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
