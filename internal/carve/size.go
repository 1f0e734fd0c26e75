package carve

import (
	"github.com/shubham/carve/internal/cursor"
	"github.com/shubham/carve/internal/filetype"
)

// SizeHeader is the capability set a size-carved format's header parser
// must implement: decode itself, report genuineness, and report its own
// declared total size.
type SizeHeader interface {
	cursor.Deserializer
	IsGenuine() bool
	Size() uint64
}

// Size carves a size-declaring format: it deserializes header from the
// start of buffer, checks IsGenuine and MinSize, and — if both pass —
// saves buffer[:header.Size()] via the output manager.
//
// header must be a pointer to a zero-valued instance (e.g. &format.BMP{}).
func Size(buffer []byte, ft *filetype.FileType, header SizeHeader) (Result, error) {
	c := cursor.New(buffer)
	if _, err := header.Deserialize(c); err != nil {
		if cursor.KindOf(err) == cursor.KindInvalidData || cursor.KindOf(err) == cursor.KindUnexpectedEOF {
			return Result{}, nil
		}
		return Result{}, err
	}

	if !header.IsGenuine() {
		return Result{}, nil
	}

	size := header.Size()
	if size < ft.MinSize || size > uint64(len(buffer)) {
		return Result{}, nil
	}

	payload := buffer[:size]
	return save(ft, payload, size)
}
