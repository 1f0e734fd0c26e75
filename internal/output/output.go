// Package output implements the shared save path every carving strategy
// calls once a candidate is confirmed genuine: it creates the type's
// category directory, names the file deterministically, and writes the
// payload.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shubham/carve/internal/filetype"
)

// Save writes payload to {ft.Category}/{ft.Ext}_{n:08d}.{ft.Ext}, creating
// the category directory (including parents) if needed, and returns the
// file name it wrote. n is the pre-increment value of ft's per-type
// counter, so concurrent callers for the same FileType never collide.
func Save(ft *filetype.FileType, payload []byte) (string, error) {
	if err := os.MkdirAll(ft.Category, 0o755); err != nil {
		return "", fmt.Errorf("creating category directory %q: %w", ft.Category, err)
	}

	n := ft.Next()
	name := fmt.Sprintf("%s_%08d.%s", ft.Ext, n, ft.Ext)
	path := filepath.Join(ft.Category, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.Write(payload); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flushing %q: %w", path, err)
	}

	return path, nil
}
