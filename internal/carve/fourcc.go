package carve

import (
	"github.com/shubham/carve/internal/cursor"
	"github.com/shubham/carve/internal/filetype"
)

// ChunkHeader is the capability set a fourcc format's chunk parser must
// implement in addition to Deserialize: report whether this chunk is the
// terminating sentinel.
type ChunkHeader interface {
	cursor.Deserializer
	IsEnd() bool
}

// FourCC carves a chunked/segmented container: it deserializes the
// format's leading header once (newHeader), then repeatedly deserializes
// a fresh chunk (newChunk) until one reports IsEnd, an unrecognized chunk
// is rejected per ft.Method, or ft.MaxSize is exceeded.
//
// newHeader and newChunk construct a fresh zero-valued parser instance
// per call — carving never reuses parser state across chunks.
func FourCC(buffer []byte, ft *filetype.FileType, newHeader func() cursor.Deserializer, newChunk func() ChunkHeader) (Result, error) {
	c := cursor.New(buffer)

	header := newHeader()
	if _, err := header.Deserialize(c); err != nil {
		return Result{}, nil
	}

	for {
		if uint64(c.Position()) > ft.MaxSize {
			// exceeding the bound is treated as a STRICT failure regardless
			// of the configured method.
			return Result{}, nil
		}

		chunk := newChunk()
		_, err := chunk.Deserialize(c)
		if err == nil {
			if chunk.IsEnd() {
				break
			}
			continue
		}

		switch cursor.KindOf(err) {
		case cursor.KindInvalidData:
			switch ft.Method {
			case filetype.Strict, filetype.Fancy:
				return Result{}, nil
			case filetype.Simple:
				// tolerate the unknown chunk; rely on IsEnd or MaxSize to terminate.
				continue
			}
		default:
			// unexpected EOF or other I/O error: abort the candidate.
			return Result{}, nil
		}
	}

	pos := uint64(c.Position())
	if pos < ft.MinSize || pos > ft.MaxSize {
		return Result{}, nil
	}

	payload := buffer[:pos]
	return save(ft, payload, pos)
}
