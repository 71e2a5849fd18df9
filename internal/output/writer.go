package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/buildmanifest/internal/manifest"
	"github.com/quantmind-br/buildmanifest/internal/utils"
)

// Options selects how entries are rendered and written
type Options struct {
	// Sources writes bare source paths, without the "target=" prefix
	Sources bool
	// Contents replaces each source path with the file's single line
	Contents bool
	// Absolute writes absolute source paths
	Absolute bool
	// Unique keeps one line per target, the last one declared
	Unique bool
	// CopyTree materializes a directory of copies instead of a manifest
	CopyTree bool
	// Progress shows a progress bar on an interactive terminal
	Progress bool
}

// Normalize validates the mode combination and applies the modes implied
// by CopyTree.
func (o Options) Normalize() (Options, error) {
	if o.CopyTree {
		if o.Contents {
			return o, ErrIncompatibleModes
		}
		o.Unique = true
		o.Sources = true
	}
	return o, nil
}

// Writer reduces selected entries into output manifests or trees
type Writer struct {
	opts        Options
	logger      *utils.Logger
	treeFS      func(root string) billy.Filesystem
	progressOut io.Writer
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Options
	Logger *utils.Logger
	// TreeFS returns the filesystem a tree is copied into. Defaults to the
	// OS filesystem rooted at the output path.
	TreeFS func(root string) billy.Filesystem
	// ProgressOutput receives progress bars. Defaults to stderr.
	ProgressOutput io.Writer
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) (*Writer, error) {
	normalized, err := opts.Options.Normalize()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	treeFS := opts.TreeFS
	if treeFS == nil {
		treeFS = func(root string) billy.Filesystem {
			return osfs.New(root)
		}
	}

	progressOut := opts.ProgressOutput
	if progressOut == nil {
		progressOut = os.Stderr
	}

	return &Writer{
		opts:        normalized,
		logger:      logger.WithComponent("writer"),
		treeFS:      treeFS,
		progressOut: progressOut,
	}, nil
}

// Options returns the normalized options
func (w *Writer) Options() Options {
	return w.opts
}

// Render renders one entry as an output line
func (w *Writer) Render(e manifest.Entry) (string, error) {
	var line string
	switch {
	case w.opts.Contents:
		data, err := os.ReadFile(e.Source)
		if err != nil {
			return "", fmt.Errorf("failed to read contents of %s: %w", e.Source, err)
		}
		lines := splitLines(string(data))
		if len(lines) != 1 {
			return "", &ContentsError{Source: e.Source, Lines: len(lines)}
		}
		line = lines[0]
	case w.opts.Absolute:
		abs, err := filepath.Abs(e.Source)
		if err != nil {
			return "", err
		}
		line = abs
	default:
		line = e.Source
	}

	if !w.opts.Sources {
		line = e.Target + "=" + line
	}
	return line, nil
}

// Reduce renders entries into one LineSet per output, in entry order.
// Every entry must carry a bucket within range.
func (w *Writer) Reduce(outputs int, entries []manifest.Entry) ([]LineSet, error) {
	sets := make([]LineSet, outputs)
	for i := range sets {
		sets[i] = NewLineSet(w.opts.Unique)
	}

	for _, e := range entries {
		if !e.HasBucket() || e.Bucket >= outputs {
			return nil, fmt.Errorf("%w: %s from %s", ErrUnbucketedEntry, e.String(), e.Manifest)
		}
		line, err := w.Render(e)
		if err != nil {
			return nil, err
		}
		sets[e.Bucket].Add(e.Target, line)
	}

	return sets, nil
}

// WriteAll reduces entries and writes every output in order
func (w *Writer) WriteAll(outputs []string, entries []manifest.Entry) error {
	sets, err := w.Reduce(len(outputs), entries)
	if err != nil {
		return err
	}

	if w.opts.CopyTree {
		// CopyTree implies Unique, so every set is by target
		for i, path := range outputs {
			if err := w.CopyTree(path, sets[i].(*targetSet).Pairs()); err != nil {
				return err
			}
		}
		return nil
	}

	bar := w.progressBar(len(outputs), utils.DescWriting)
	for i, path := range outputs {
		if err := w.WriteManifest(path, sets[i].Lines()); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}

// progressBar returns nil unless progress is enabled and its output is a
// terminal
func (w *Writer) progressBar(total int, description string) *progressbar.ProgressBar {
	if !w.opts.Progress || !utils.IsTerminal(w.progressOut) {
		return nil
	}
	return utils.NewProgressBarTo(w.progressOut, total, description)
}

// WriteManifest writes lines to path, one per line
func (w *Writer) WriteManifest(path string, lines []string) error {
	if err := utils.EnsureDir(path); err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.WithOutput(path).Debug().
		Int("lines", len(lines)).
		Msg("Wrote manifest")
	return nil
}

// splitLines splits text on any line ending; a trailing line ending does
// not start a new line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
