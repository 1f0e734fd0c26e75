package format

import (
	"fmt"

	"github.com/shubham/carve/internal/cursor"
)

// PNGHeader is the 8-byte PNG signature. It consumes no genuineness check
// of its own — the fourcc driver trusts the Aho-Corasick match on the
// signature bytes and only needs the header skipped.
type PNGHeader struct {
	signature uint64
}

// Deserialize reads the 8-byte PNG signature.
func (h *PNGHeader) Deserialize(c *cursor.Cursor) (int, error) {
	sig, err := c.ReadU64BE()
	if err != nil {
		return 0, err
	}
	h.signature = sig
	return 8, nil
}

var pngChunkTypes = map[string]bool{
	"IHDR": true, "PLTE": true, "IDAT": true, "IEND": true,
	"tEXt": true, "iTXt": true, "tIME": true, "gAMA": true,
	"sRGB": true, "iCCP": true, "pHYs": true,
}

// PNGChunk is one `length | type | data | crc` chunk. Deserialize skips
// over data+crc without validating the CRC — only the chunk type needs to
// be recognized for the walk to continue.
type PNGChunk struct {
	Length uint32
	Type   string
}

// Deserialize reads the chunk header and advances past its data and CRC,
// rejecting any chunk type outside the recognized PNG chunk set.
func (p *PNGChunk) Deserialize(c *cursor.Cursor) (int, error) {
	start := c.Position()

	length, err := c.ReadU32BE()
	if err != nil {
		return 0, err
	}
	p.Length = length

	typeBytes, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	p.Type = string(typeBytes)

	if !pngChunkTypes[p.Type] {
		return 0, cursor.InvalidData("unrecognized PNG chunk type %q", p.Type)
	}

	// skip chunk data + CRC
	if _, err := c.ReadExact(int(length) + 4); err != nil {
		return 0, err
	}

	return c.Position() - start, nil
}

// IsEnd reports whether this chunk is the terminating IEND chunk.
func (p *PNGChunk) IsEnd() bool { return p.Type == "IEND" }

func (p *PNGChunk) String() string {
	return fmt.Sprintf("length=%d chunk=%s", p.Length, p.Type)
}
