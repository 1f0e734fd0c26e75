// Package audit implements the append-only trail of every successful
// carve: a buffered writer guarded by a mutex, flushed after each record.
package audit

import (
	"bufio"
	"fmt"
	"os"
	"sync"
)

// Sink is a mutual-exclusion-guarded audit log. The zero value is not
// usable; construct one with Open.
type Sink struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

// Open creates (truncating) the audit file at path.
func Open(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating audit file %q: %w", path, err)
	}
	return &Sink{file: f, writer: bufio.NewWriter(f)}, nil
}

// Close flushes and closes the underlying file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writer.Flush(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// AddMetadata writes the leading metadata block recording the input
// image's path and total length, once at startup.
func (s *Sink) AddMetadata(imagePath string, length int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.writer, "image name: %s, file length: %d\n\n", imagePath, length); err != nil {
		return err
	}
	return s.writer.Flush()
}

// Record describes one successfully carved artifact.
type Record struct {
	Artifact    string
	OffsetStart uint64
	OffsetEnd   uint64
	Length      uint64
}

// AddArtefact appends one audit line and flushes immediately so the trail
// survives a crash mid-run.
func (s *Sink) AddArtefact(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.writer, "%s: %d-%d (0x%X-0x%X) %d\n",
		r.Artifact, r.OffsetStart, r.OffsetEnd, r.OffsetStart, r.OffsetEnd, r.Length)
	if err != nil {
		return err
	}
	return s.writer.Flush()
}
