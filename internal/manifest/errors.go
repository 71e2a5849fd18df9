package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the manifest package
var (
	// ErrUnterminatedLine indicates a manifest line without a trailing newline
	ErrUnterminatedLine = errors.New("unterminated manifest line")

	// ErrUnterminatedGroup indicates a '{' group prefix without a closing '}'
	ErrUnterminatedGroup = errors.New("unterminated { in manifest line")

	// ErrMissingSeparator indicates a line without a target=source separator
	ErrMissingSeparator = errors.New("manifest line must have the form target=source")

	// ErrInvalidGroup indicates a group label containing '='
	ErrInvalidGroup = errors.New("group label cannot contain '='")

	// ErrEmptyTarget indicates a line whose target path is empty
	ErrEmptyTarget = errors.New("target path cannot be empty")

	// ErrUnknownGroup indicates a requested group that no input provided
	ErrUnknownGroup = errors.New("requested group not found")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")
)

// ParseError represents a malformed manifest line
type ParseError struct {
	Title string
	Line  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Title, e.Err, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(title, line string, err error) *ParseError {
	return &ParseError{
		Title: title,
		Line:  line,
		Err:   err,
	}
}

// UnknownGroupError reports groups requested for an input that never
// appeared in it, along with the groups that did.
type UnknownGroupError struct {
	Input     string
	Missing   []Group
	Available []Group
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("%s not found in %q; try one of: %s",
		joinGroups(e.Missing), e.Input, joinGroups(e.Available))
}

func (e *UnknownGroupError) Unwrap() error {
	return ErrUnknownGroup
}

func joinGroups(groups []Group) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g.Quoted()
	}
	return strings.Join(parts, ", ")
}
