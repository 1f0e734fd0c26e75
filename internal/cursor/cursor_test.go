package cursor

import (
	"bytes"
	"testing"
)

func TestReadPrimitives(t *testing.T) {
	buf := []byte{
		0x01,       // u8
		0x00, 0x02, // u16 BE = 2
		0x03, 0x00, // u16 LE = 3
		0x00, 0x00, 0x00, 0x04, // u32 BE = 4
		0x05, 0x00, 0x00, 0x00, // u32 LE = 5
	}
	c := New(buf)

	u8, err := c.ReadU8()
	if err != nil || u8 != 1 {
		t.Fatalf("ReadU8 = %d, %v; want 1, nil", u8, err)
	}

	u16be, err := c.ReadU16BE()
	if err != nil || u16be != 2 {
		t.Fatalf("ReadU16BE = %d, %v; want 2, nil", u16be, err)
	}

	u16le, err := c.ReadU16LE()
	if err != nil || u16le != 3 {
		t.Fatalf("ReadU16LE = %d, %v; want 3, nil", u16le, err)
	}

	u32be, err := c.ReadU32BE()
	if err != nil || u32be != 4 {
		t.Fatalf("ReadU32BE = %d, %v; want 4, nil", u32be, err)
	}

	u32le, err := c.ReadU32LE()
	if err != nil || u32le != 5 {
		t.Fatalf("ReadU32LE = %d, %v; want 5, nil", u32le, err)
	}

	if c.Position() != len(buf) {
		t.Fatalf("Position() = %d, want %d", c.Position(), len(buf))
	}
}

func TestReadExactBounds(t *testing.T) {
	c := New([]byte{1, 2, 3})

	if _, err := c.ReadExact(3); err != nil {
		t.Fatalf("ReadExact(3) unexpected error: %v", err)
	}

	if _, err := c.ReadU8(); KindOf(err) != KindUnexpectedEOF {
		t.Fatalf("ReadU8 past end: kind = %v, want KindUnexpectedEOF", KindOf(err))
	}
}

func TestReadUntil(t *testing.T) {
	c := New([]byte{1, 2, 0xFF, 3, 4})

	got, err := c.ReadUntil(0xFF)
	if err != nil {
		t.Fatalf("ReadUntil unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 0xFF}) {
		t.Fatalf("ReadUntil = %v, want [1 2 255]", got)
	}
	if c.Position() != 3 {
		t.Fatalf("Position() = %d, want 3", c.Position())
	}

	if _, err := c.ReadUntil(0xAA); KindOf(err) != KindUnexpectedEOF {
		t.Fatalf("ReadUntil with no delimiter: kind = %v, want KindUnexpectedEOF", KindOf(err))
	}
}

func TestInvalidDataKind(t *testing.T) {
	err := InvalidData("bad marker %d", 7)
	if KindOf(err) != KindInvalidData {
		t.Fatalf("KindOf(InvalidData(...)) = %v, want KindInvalidData", KindOf(err))
	}
}
