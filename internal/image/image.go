// Package image memory-maps the input file the carver scans, exposing it
// as a read-only byte slice shared by reference across worker goroutines
// for the lifetime of the run.
package image

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Image is a read-only memory-mapped view of the input file. The zero
// value is not usable; construct one with Open.
type Image struct {
	file *os.File
	mmap mmap.MMap
}

// Open maps path read-only for the lifetime of the returned Image.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat input file: %w", err)
	}
	if stat.Size() == 0 {
		f.Close()
		return nil, fmt.Errorf("input file %q is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("memory-mapping input file: %w", err)
	}

	return &Image{file: f, mmap: m}, nil
}

// Bytes returns the mapped image as a read-only byte slice.
func (img *Image) Bytes() []byte { return img.mmap }

// Len returns the image size in bytes.
func (img *Image) Len() int { return len(img.mmap) }

// Close unmaps the image and closes the underlying file. The map must
// not be dereferenced after this — callers join every worker before
// calling it.
func (img *Image) Close() error {
	if err := img.mmap.Unmap(); err != nil {
		img.file.Close()
		return fmt.Errorf("unmapping input file: %w", err)
	}
	return img.file.Close()
}
