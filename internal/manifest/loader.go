package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Loader reads manifest files into raw lines
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the manifest file at path
func (l *Loader) Load(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	return lines, nil
}

// EntryLines returns the single line for a TARGET=SOURCE value given on the
// command line.
func (l *Loader) EntryLines(value string) []string {
	return []string{value + "\n"}
}

// ReadLines splits r into lines, keeping each trailing newline. A final
// line without a newline is returned as-is so the parser can reject it.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
