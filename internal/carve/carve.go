// Package carve implements the two generic carving drivers: size-carve
// for formats whose header declares a total length, and fourcc-carve for
// chunked/segmented containers walked until a terminator.
package carve

import (
	"github.com/shubham/carve/internal/filetype"
	"github.com/shubham/carve/internal/output"
)

// Result is returned by every carving strategy. ConsumedBytes == 0 means
// no carving occurred at this offset; any other value identifies how many
// bytes of the image this candidate spans and FileName/Length describe
// what was produced.
type Result struct {
	ConsumedBytes uint64
	FileName      string
	Length        uint64
}

// save writes payload via the output manager and returns the result the
// caller should report upstream.
func save(ft *filetype.FileType, payload []byte, consumed uint64) (Result, error) {
	name, err := output.Save(ft, payload)
	if err != nil {
		return Result{}, err
	}
	return Result{ConsumedBytes: consumed, FileName: name, Length: uint64(len(payload))}, nil
}
