package utils

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescCopying = "Copying"
	DescWriting = "Writing"
)

// NewProgressBarTo creates a consistently styled progress bar on w.
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (spinner mode).
//   - description: Text shown before the bar (e.g., DescCopying).
//
// Example:
//
//	bar := utils.NewProgressBarTo(os.Stderr, len(pairs), utils.DescCopying)
//	defer bar.Finish()
//
//	for _, p := range pairs {
//	    // Copy file
//	    bar.Add(1)
//	}
func NewProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
