package output

import (
	"errors"
	"fmt"
)

// Sentinel errors for the output package
var (
	// ErrIncompatibleModes indicates --copytree combined with --contents
	ErrIncompatibleModes = errors.New("--copytree is incompatible with --contents")

	// ErrUnbucketedEntry indicates an entry reached the writer without an output
	ErrUnbucketedEntry = errors.New("entry is not routed to any output")

	// ErrContentsNotSingleLine indicates a --contents source that is empty or
	// holds more than one line
	ErrContentsNotSingleLine = errors.New("contents file must hold exactly one line")
)

// ContentsError reports a source file unusable in contents mode
type ContentsError struct {
	Source string
	Lines  int
}

func (e *ContentsError) Error() string {
	return fmt.Sprintf("%s: %v (found %d)", e.Source, ErrContentsNotSingleLine, e.Lines)
}

func (e *ContentsError) Unwrap() error {
	return ErrContentsNotSingleLine
}
