package format

import "github.com/shubham/carve/internal/cursor"

// WAV header: "RIFF" | size (LE) | "WAVEfmt " | chunk_size (LE). See
// https://docs.fileformat.com/audio/wav/
type WAV struct {
	magic     uint32 // should be "RIFF"
	size      uint32
	id        uint64 // should be "WAVEfmt "
	chunkSize uint32
}

const (
	riffMagic   uint32 = 0x46464952         // "RIFF" little-endian
	waveFmtID   uint64 = 0x20746d6645564157 // "WAVEfmt " little-endian
	wavMaxChunk uint32 = 255
)

// Deserialize reads the 20-byte WAV/RIFF header.
func (w *WAV) Deserialize(c *cursor.Cursor) (int, error) {
	start := c.Position()
	var err error

	if w.magic, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if w.size, err = c.ReadU32LE(); err != nil {
		return 0, err
	}
	if w.id, err = c.ReadU64LE(); err != nil {
		return 0, err
	}
	if w.chunkSize, err = c.ReadU32LE(); err != nil {
		return 0, err
	}

	return c.Position() - start, nil
}

// Size is the RIFF length plus the 8 leading bytes it excludes.
func (w *WAV) Size() uint64 { return uint64(w.size) + 8 }

// IsGenuine requires the RIFF/WAVEfmt magic and a plausible fmt chunk size.
func (w *WAV) IsGenuine() bool {
	return w.magic == riffMagic && w.id == waveFmtID && w.chunkSize < wavMaxChunk
}

// Ext returns the file extension used for naming/category lookups.
func (w *WAV) Ext() string { return "wav" }
