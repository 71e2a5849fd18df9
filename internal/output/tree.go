package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5"

	"github.com/quantmind-br/buildmanifest/internal/utils"
)

// CopyTree copies every pair's source file (its Line) to Target under root
func (w *Writer) CopyTree(root string, pairs []Pair) error {
	tree := w.treeFS(root)
	logger := w.logger.WithOutput(root)

	bar := w.progressBar(len(pairs), utils.DescCopying)
	if bar != nil {
		defer bar.Finish()
	}

	var total int64
	for _, p := range pairs {
		n, err := copyFile(tree, p.Target, p.Line)
		if err != nil {
			return fmt.Errorf("failed to copy %s to %s: %w", p.Line, filepath.Join(root, p.Target), err)
		}
		total += n
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	logger.Debug().
		Int("files", len(pairs)).
		Str("size", humanize.Bytes(uint64(total))).
		Msg("Copied tree")
	return nil
}

// copyFile copies the contents of source into target on tree, creating
// parent directories on demand.
func copyFile(tree billy.Filesystem, target, source string) (int64, error) {
	if err := tree.MkdirAll(filepath.Dir(target), 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return 0, err
	}

	src, err := os.Open(source)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := tree.Create(target)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	return n, err
}
