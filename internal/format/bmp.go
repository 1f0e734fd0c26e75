package format

import "github.com/shubham/carve/internal/cursor"

// BMP header fields: a 14-byte bitmap file header followed by the leading
// fields of the DIB header. See
// https://www.ece.ualberta.ca/~elliott/ee552/studentAppNotes/2003_w/misc/bmp_file_format/bmp_file_format.htm
type BMP struct {
	magic       uint16 // should be 'BM' (0x4D42 little-endian)
	size        uint32 // declared bitmap file size
	reserved    uint32 // should be 0
	pixelOffset uint32
	dibSize     uint32 // 40, 56, 108 or 128
	width       uint32
	height      uint32
	planes      uint16
	bitCount    uint16
	compression uint32
	imageSize   uint32
	xPelsPerM   uint32
	yPelsPerM   uint32
	clrUsed     uint32
	clrImp      uint32
}

const (
	bitmapInfoHeader   = 40
	bitmapV3InfoHeader = 56
	bitmapV4Header     = 108
	bitmapV5Header     = 128
)

// Deserialize reads the 54-byte BMP header.
func (b *BMP) Deserialize(c *cursor.Cursor) (int, error) {
	start := c.Position()
	var err error

	if b.magic, err = c.ReadU16LE(); err != nil {
		return 0, err
	}
	if b.size, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.reserved, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.pixelOffset, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.dibSize, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.width, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.height, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.planes, err = c.ReadU16LE(); err != nil {
		return 0, err
	}
	if b.bitCount, err = c.ReadU16LE(); err != nil {
		return 0, err
	}
	if b.compression, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.imageSize, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.xPelsPerM, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.yPelsPerM, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.clrUsed, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if b.clrImp, err = c.ReadU32LE(); err != nil {
		return 0, err
	}

	return c.Position() - start, nil
}

// Size is the declared total file size.
func (b *BMP) Size() uint64 { return uint64(b.size) }

// IsGenuine embodies BMP's sanity check: the reserved field must be zero
// and the DIB header size must be one of the four known variants.
func (b *BMP) IsGenuine() bool {
	return b.reserved == 0 &&
		(b.dibSize == bitmapInfoHeader ||
			b.dibSize == bitmapV3InfoHeader ||
			b.dibSize == bitmapV4Header ||
			b.dibSize == bitmapV5Header)
}

// Ext returns the file extension used for naming/category lookups.
func (b *BMP) Ext() string { return "bmp" }
