package format

import (
	"fmt"

	"github.com/shubham/carve/internal/cursor"
)

// JPEG marker bytes that carry no length field.
var (
	soi = [2]byte{0xFF, 0xD8} // start of image
	eoi = [2]byte{0xFF, 0xD9} // end of image
	tem = [2]byte{0xFF, 0x01} // temporary
	sos = [2]byte{0xFF, 0xDA} // start of scan — entropy-coded data follows
)

func isRestart(marker [2]byte) bool {
	return marker[0] == 0xFF && marker[1] >= 0xD0 && marker[1] <= 0xD7
}

func isStandalone(marker [2]byte) bool {
	return marker == soi || marker == eoi || marker == tem || isRestart(marker)
}

// JPEGHeader is the fourcc driver's "header" step for JPEG; it reads
// nothing, since JPEG has no separate signature beyond the first segment.
type JPEGHeader struct{}

// Deserialize consumes nothing — the SOI marker itself is read as the
// first JPEGSegment, matching the original grammar where the magic bytes
// double as the first segment.
func (h *JPEGHeader) Deserialize(c *cursor.Cursor) (int, error) {
	return 0, nil
}

// JPEGSegment is one marker segment: FF xx, optionally followed by a
// big-endian length and that many bytes of payload — except for
// standalone markers (no length) and SOS, whose entropy-coded scan data
// has no declared length and must be scanned byte-by-byte for the next
// marker.
type JPEGSegment struct {
	marker [2]byte
	length uint16
	hasLen bool
}

// Deserialize reads one JPEG segment, advancing the cursor past it.
func (s *JPEGSegment) Deserialize(c *cursor.Cursor) (int, error) {
	start := c.Position()

	b0, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	if b0 != 0xFF {
		return 0, cursor.InvalidData("expected marker prefix 0xFF, got 0x%02X", b0)
	}
	b1, err := c.ReadU8()
	if err != nil {
		return 0, err
	}
	s.marker = [2]byte{b0, b1}

	if isStandalone(s.marker) {
		return c.Position() - start, nil
	}

	if s.marker[1] < 0xC0 {
		return 0, cursor.InvalidData("invalid marker byte 0x%02X", s.marker[1])
	}

	if s.marker == sos {
		if err := s.scanEntropyData(c); err != nil {
			return 0, err
		}
		return c.Position() - start, nil
	}

	length, err := c.ReadU16BE()
	if err != nil {
		return 0, err
	}
	s.length = length
	s.hasLen = true

	if length < 2 {
		return 0, cursor.InvalidData("segment length %d too small", length)
	}
	if _, err := c.ReadExact(int(length) - 2); err != nil {
		return 0, err
	}

	return c.Position() - start, nil
}

// scanEntropyData walks the entropy-coded scan data following an SOS
// marker byte-by-byte, tolerating byte-stuffed 0xFF 0x00 sequences and
// restart markers 0xFF D0..D7, and rewinds onto the first real marker it
// finds.
func (s *JPEGSegment) scanEntropyData(c *cursor.Cursor) error {
	for {
		if _, err := c.ReadUntil(0xFF); err != nil {
			return err
		}

		b2, err := c.ReadU8()
		if err != nil {
			return err
		}
		if b2 == 0x00 || (b2 >= 0xD0 && b2 <= 0xD7) {
			continue
		}

		// rewind so the next segment starts at this marker
		c.SetPosition(c.Position() - 2)
		return nil
	}
}

// IsEnd reports whether this segment is the terminating EOI marker.
func (s *JPEGSegment) IsEnd() bool { return s.marker == eoi }

func (s *JPEGSegment) String() string {
	if s.hasLen {
		return fmt.Sprintf("marker=%X length=%d", s.marker, s.length)
	}
	return fmt.Sprintf("marker=%X", s.marker)
}
