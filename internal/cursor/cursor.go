// Package cursor implements the bounded, position-tracking byte reader
// every format parser consumes while deciding whether a candidate offset
// is a genuine file.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Kind classifies the error a Cursor read failed with.
type Kind int

const (
	// KindUnexpectedEOF means a bounded read ran past the end of the buffer.
	KindUnexpectedEOF Kind = iota
	// KindInvalidData means the parser rejected the bytes as structurally wrong.
	KindInvalidData
	// KindOther is any other I/O failure.
	KindOther
)

// Error wraps a Kind with its message so carving strategies can switch on
// Kind without string matching.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// InvalidData builds an Error of KindInvalidData.
func InvalidData(format string, args ...any) error {
	return &Error{Kind: KindInvalidData, Msg: fmt.Sprintf(format, args...)}
}

func unexpectedEOF(need, have int) error {
	return &Error{Kind: KindUnexpectedEOF, Msg: fmt.Sprintf("need %d bytes, have %d", need, have)}
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &cursor.Error{Kind: cursor.KindInvalidData}) matches any
// InvalidData error regardless of its message.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// KindOf extracts the Kind of err. io.EOF and io.ErrUnexpectedEOF map to
// KindUnexpectedEOF; anything else that isn't a *Error is KindOther.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return KindUnexpectedEOF
	}
	return KindOther
}

// Cursor is a stateful reader over an immutable byte slice — typically a
// window into the memory-mapped image starting at a candidate magic offset.
type Cursor struct {
	bytes    []byte
	position int
}

// New wraps buf in a Cursor starting at position 0.
func New(buf []byte) *Cursor {
	return &Cursor{bytes: buf}
}

// Position returns the current byte offset into the underlying buffer.
func (c *Cursor) Position() int { return c.position }

// SetPosition moves the cursor directly; a position past the end only
// surfaces as a KindUnexpectedEOF error on the next read. Negative
// positions are not checked.
func (c *Cursor) SetPosition(pos int) { c.position = pos }

// Len returns the number of unread bytes.
func (c *Cursor) Len() int { return len(c.bytes) - c.position }

func (c *Cursor) readExact(n int) ([]byte, error) {
	if n < 0 || c.position+n > len(c.bytes) {
		return nil, unexpectedEOF(n, c.Len())
	}
	b := c.bytes[c.position : c.position+n]
	c.position += n
	return b, nil
}

// ReadExact reads exactly n bytes, advancing the cursor.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	return c.readExact(n)
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16BE reads a big-endian uint16.
func (c *Cursor) ReadU16BE() (uint16, error) {
	b, err := c.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU16LE reads a little-endian uint16.
func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32BE reads a big-endian uint32.
func (c *Cursor) ReadU32BE() (uint32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64BE reads a big-endian uint64.
func (c *Cursor) ReadU64BE() (uint64, error) {
	b, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadU64LE reads a little-endian uint64.
func (c *Cursor) ReadU64LE() (uint64, error) {
	b, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadUntil consumes bytes up to and including the first occurrence of
// delim, returning the bytes consumed (including delim). It fails with
// KindUnexpectedEOF if delim is never found before the buffer ends.
func (c *Cursor) ReadUntil(delim byte) ([]byte, error) {
	if c.position > len(c.bytes) {
		return nil, unexpectedEOF(1, 0)
	}
	rest := c.bytes[c.position:]
	idx := -1
	for i, b := range rest {
		if b == delim {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.position = len(c.bytes)
		return nil, unexpectedEOF(1, 0)
	}
	consumed := rest[:idx+1]
	c.position += idx + 1
	return consumed, nil
}

// Deserializer is implemented by every format parser: it consumes bytes
// from cursor and reports how many bytes it read, or an error classified
// via Kind (see KindOf).
type Deserializer interface {
	Deserialize(c *Cursor) (bytesRead int, err error)
}
