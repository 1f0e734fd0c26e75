package format

import (
	"testing"

	"github.com/shubham/carve/internal/cursor"
)

func TestJPEGStandaloneMarker(t *testing.T) {
	buf := []byte{0xFF, 0xD8} // SOI
	s := &JPEGSegment{}
	n, err := s.Deserialize(cursor.New(buf))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if n != 2 {
		t.Errorf("Deserialize consumed %d bytes, want 2", n)
	}
}

func TestJPEGSegmentWithLength(t *testing.T) {
	// APP0 marker, length 16 (includes the 2 length bytes), 14 bytes payload.
	buf := []byte{0xFF, 0xE0, 0x00, 0x10}
	buf = append(buf, make([]byte, 14)...)
	s := &JPEGSegment{}
	n, err := s.Deserialize(cursor.New(buf))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Deserialize consumed %d bytes, want %d", n, len(buf))
	}
}

func TestJPEGEntropyScanToleratesStuffingAndRestart(t *testing.T) {
	// SOS marker, then entropy data containing a stuffed 0xFF 0x00 and a
	// restart marker 0xFF D0, terminated by a real EOI marker.
	buf := []byte{
		0xFF, 0xDA, // SOS
		0x12, 0xFF, 0x00, 0x34, // stuffed FF 00
		0xFF, 0xD0, 0x56, // restart marker RST0
		0xFF, 0xD9, // EOI
	}
	c := cursor.New(buf)

	scan := &JPEGSegment{}
	if _, err := scan.Deserialize(c); err != nil {
		t.Fatalf("Deserialize(SOS) unexpected error: %v", err)
	}
	if scan.IsEnd() {
		t.Fatal("SOS segment incorrectly reported IsEnd()")
	}

	end := &JPEGSegment{}
	if _, err := end.Deserialize(c); err != nil {
		t.Fatalf("Deserialize(EOI) unexpected error: %v", err)
	}
	if !end.IsEnd() {
		t.Error("EOI segment did not report IsEnd()")
	}
}

func TestJPEGInvalidMarkerPrefix(t *testing.T) {
	buf := []byte{0x00, 0x01}
	s := &JPEGSegment{}
	if _, err := s.Deserialize(cursor.New(buf)); cursor.KindOf(err) != cursor.KindInvalidData {
		t.Fatalf("Deserialize with bad prefix: kind = %v, want KindInvalidData", cursor.KindOf(err))
	}
}
