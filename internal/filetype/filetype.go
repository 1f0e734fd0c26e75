// Package filetype holds the corpus of file-type descriptors the scanner
// dispatches to: one entry per recoverable format, binding its magic
// signature, output category, size bounds and carving behavior.
package filetype

import "sync/atomic"

// Strategy selects which carving driver a FileType uses.
type Strategy int

const (
	// Size carves a format whose header declares its own total length.
	Size Strategy = iota
	// FourCC carves a chunked/segmented container, walking chunks until a
	// terminator sentinel or an error.
	FourCC
)

// Method controls how the FourCC driver reacts to an unrecognized chunk.
type Method int

const (
	// Strict aborts the whole candidate on the first unrecognized chunk.
	Strict Method = iota
	// Simple tolerates unknown chunks, relying on is_end() or max size to terminate.
	Simple
	// Fancy is reserved for future grammar-aware recovery; currently identical to Strict.
	Fancy
)

// FileType is a corpus entry: everything the scanner and carving
// strategies need to know about one recoverable format. It is built once
// at startup and shared read-only by every worker goroutine; only counter
// mutates, and only via Next.
type FileType struct {
	Magic    []byte
	Ext      string
	Category string
	MinSize  uint64
	MaxSize  uint64
	Strategy Strategy
	Method   Method

	counter uint64
}

// Next atomically returns the pre-increment value of the per-type counter
// and advances it, giving every save() call a unique, monotonically
// increasing index within this FileType.
func (ft *FileType) Next() uint64 {
	return atomic.AddUint64(&ft.counter, 1) - 1
}

// Count returns the current counter value, mostly useful for tests.
func (ft *FileType) Count() uint64 {
	return atomic.LoadUint64(&ft.counter)
}
