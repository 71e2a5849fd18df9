package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
)

// ExpandResponseFiles replaces every argument of the form @FILE with the
// shell-split contents of FILE. Expanded arguments are scanned again, so a
// response file may reference further response files.
func ExpandResponseFiles(args []string) ([]string, error) {
	out := append([]string(nil), args...)

	for i := 0; i < len(out); {
		if !strings.HasPrefix(out[i], "@") {
			i++
			continue
		}

		path := out[i][1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read response file: %w", err)
		}
		words, err := shlex.Split(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to split response file %s: %w", path, err)
		}

		out = append(out[:i], append(words, out[i+1:]...)...)
	}

	return out, nil
}
