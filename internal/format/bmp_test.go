package format

import (
	"encoding/binary"
	"testing"

	"github.com/shubham/carve/internal/cursor"
)

// buildBMPHeader returns a 54-byte BMP header declaring the given file
// size, reserved field and DIB header size.
func buildBMPHeader(size uint32, reserved uint32, dibSize uint32) []byte {
	buf := make([]byte, 54)
	binary.LittleEndian.PutUint16(buf[0:2], 0x4D42) // "BM"
	binary.LittleEndian.PutUint32(buf[2:6], size)
	binary.LittleEndian.PutUint32(buf[6:10], reserved)
	binary.LittleEndian.PutUint32(buf[10:14], 54) // pixel offset
	binary.LittleEndian.PutUint32(buf[14:18], dibSize)
	return buf
}

func TestBMPGenuine(t *testing.T) {
	cases := []struct {
		name    string
		rsvd    uint32
		dibSize uint32
		want    bool
	}{
		{"reserved zero, BITMAPINFOHEADER", 0, 40, true},
		{"reserved zero, BITMAPV3", 0, 56, true},
		{"reserved zero, BITMAPV4", 0, 108, true},
		{"reserved zero, BITMAPV5", 0, 128, true},
		{"nonzero reserved", 1, 40, false},
		{"unrecognized dib size", 0, 64, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := buildBMPHeader(1000, tc.rsvd, tc.dibSize)
			b := &BMP{}
			if _, err := b.Deserialize(cursor.New(buf)); err != nil {
				t.Fatalf("Deserialize: %v", err)
			}
			if got := b.IsGenuine(); got != tc.want {
				t.Errorf("IsGenuine() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBMPSizeAndExt(t *testing.T) {
	buf := buildBMPHeader(12345, 0, 40)
	b := &BMP{}
	n, err := b.Deserialize(cursor.New(buf))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if n != 54 {
		t.Errorf("Deserialize consumed %d bytes, want 54", n)
	}
	if b.Size() != 12345 {
		t.Errorf("Size() = %d, want 12345", b.Size())
	}
	if b.Ext() != "bmp" {
		t.Errorf("Ext() = %q, want bmp", b.Ext())
	}
}

func TestBMPTruncatedHeader(t *testing.T) {
	buf := buildBMPHeader(100, 0, 40)[:10]
	b := &BMP{}
	if _, err := b.Deserialize(cursor.New(buf)); cursor.KindOf(err) != cursor.KindUnexpectedEOF {
		t.Fatalf("Deserialize on truncated buffer: kind = %v, want KindUnexpectedEOF", cursor.KindOf(err))
	}
}
