package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns raw manifest lines into entries, rebasing each source path
// from the directory the manifest was written under to the directory the
// caller wants output paths relative to.
type Parser struct {
	title       string
	manifestCwd string
	resultCwd   string
}

// NewParser creates a parser for one manifest. resultCwd is resolved
// against the process working directory once, up front.
func NewParser(title, manifestCwd, resultCwd string) (*Parser, error) {
	abs, err := filepath.Abs(resultCwd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %q: %w", resultCwd, err)
	}
	return &Parser{
		title:       title,
		manifestCwd: manifestCwd,
		resultCwd:   abs,
	}, nil
}

// Parse parses a single newline-terminated line. It returns ok=false with a
// nil error when the entry is dropped by the exclusion rule.
func (p *Parser) Parse(line string) (Entry, bool, error) {
	if !strings.HasSuffix(line, "\n") {
		return Entry{}, false, NewParseError(p.title, line, ErrUnterminatedLine)
	}
	rest := strings.TrimSuffix(line, "\n")

	group := NoGroup
	if strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return Entry{}, false, NewParseError(p.title, line, ErrUnterminatedGroup)
		}
		label := rest[1:end]
		if strings.Contains(label, "=") {
			return Entry{}, false, NewParseError(p.title, line, ErrInvalidGroup)
		}
		group = Named(label)
		rest = rest[end+1:]
	}

	target, source, found := strings.Cut(rest, "=")
	if !found {
		return Entry{}, false, NewParseError(p.title, line, ErrMissingSeparator)
	}
	if target == "" {
		return Entry{}, false, NewParseError(p.title, line, ErrEmptyTarget)
	}

	rebased, err := p.rebase(source)
	if err != nil {
		return Entry{}, false, NewParseError(p.title, line, err)
	}
	if IsExcluded(rebased) {
		return Entry{}, false, nil
	}

	return Entry{
		Group:    group,
		Target:   target,
		Source:   rebased,
		Manifest: p.title,
		Bucket:   NoBucket,
	}, true, nil
}

// rebase normalizes source under the manifest's directory, then makes it
// relative to the result directory.
func (p *Parser) rebase(source string) (string, error) {
	var joined string
	if filepath.IsAbs(source) {
		joined = filepath.Clean(source)
	} else {
		joined = filepath.Join(p.manifestCwd, source)
	}

	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", err
	}
	return filepath.Rel(p.resultCwd, abs)
}
