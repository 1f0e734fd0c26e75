// Package corpus builds the registry mapping pattern index to FileType
// descriptor and carving function — the mapping the scanner relies on
// being index-for-index identical to the Aho-Corasick matcher's pattern
// indices (see Patterns).
package corpus

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/shubham/carve/internal/carve"
	"github.com/shubham/carve/internal/cursor"
	"github.com/shubham/carve/internal/filetype"
	"github.com/shubham/carve/internal/format"
)

// Entry binds a FileType descriptor to the carving function dispatched
// when the matcher reports a hit on its magic bytes.
type Entry struct {
	*filetype.FileType
	Carve func(buffer []byte) (carve.Result, error)
}

// Corpus is the immutable (post-construction, sans per-type counters)
// list of recoverable formats.
type Corpus struct {
	entries []*Entry
}

func sizeEntry(ft *filetype.FileType, header func() carve.SizeHeader) *Entry {
	return &Entry{
		FileType: ft,
		Carve: func(buffer []byte) (carve.Result, error) {
			return carve.Size(buffer, ft, header())
		},
	}
}

func fourCCEntry(ft *filetype.FileType, newHeader func() cursor.Deserializer, newChunk func() carve.ChunkHeader) *Entry {
	return &Entry{
		FileType: ft,
		Carve: func(buffer []byte) (carve.Result, error) {
			return carve.FourCC(buffer, ft, newHeader, newChunk)
		},
	}
}

// New builds the corpus of recoverable formats, injecting minSize (the
// -m/--minsize CLI option) into every entry.
func New(minSize uint64) *Corpus {
	const defaultMaxSize = 1_000_000

	c := &Corpus{}

	c.entries = append(c.entries, sizeEntry(&filetype.FileType{
		Magic:    []byte("BM"),
		Ext:      "bmp",
		Category: "images/bmp",
		MinSize:  minSize,
		MaxSize:  defaultMaxSize,
		Strategy: filetype.Size,
		Method:   filetype.Simple,
	}, func() carve.SizeHeader { return &format.BMP{} }))

	c.entries = append(c.entries, sizeEntry(&filetype.FileType{
		Magic:    []byte("RIFF"),
		Ext:      "wav",
		Category: "audio/wav",
		MinSize:  minSize,
		MaxSize:  defaultMaxSize,
		Strategy: filetype.Size,
		Method:   filetype.Simple,
	}, func() carve.SizeHeader { return &format.WAV{} }))

	c.entries = append(c.entries, fourCCEntry(&filetype.FileType{
		Magic:    []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		Ext:      "png",
		Category: "images/png",
		MinSize:  minSize,
		MaxSize:  defaultMaxSize,
		Strategy: filetype.FourCC,
		Method:   filetype.Simple,
	},
		func() cursor.Deserializer { return &format.PNGHeader{} },
		func() carve.ChunkHeader { return &format.PNGChunk{} },
	))

	c.entries = append(c.entries, fourCCEntry(&filetype.FileType{
		Magic:    []byte{0xFF, 0xD8, 0xFF},
		Ext:      "jpg",
		Category: "images/jpg",
		MinSize:  minSize,
		MaxSize:  defaultMaxSize,
		Strategy: filetype.FourCC,
		Method:   filetype.Strict,
	},
		func() cursor.Deserializer { return &format.JPEGHeader{} },
		func() carve.ChunkHeader { return &format.JPEGSegment{} },
	))

	return c
}

// Retain drops every entry whose extension is not in extList. A nil or
// empty extList is a no-op (keep everything).
func (c *Corpus) Retain(extList []string) {
	if len(extList) == 0 {
		return
	}
	allowed := make(map[string]bool, len(extList))
	for _, e := range extList {
		allowed[e] = true
	}

	kept := c.entries[:0]
	for _, e := range c.entries {
		if allowed[e.Ext] {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}

// Len returns the number of entries currently in the corpus.
func (c *Corpus) Len() int { return len(c.entries) }

// At returns the entry at pattern index i — callers must pass the exact
// pattern index the Aho-Corasick matcher reports for a match, since entry
// order here is what defines those indices (see Patterns).
func (c *Corpus) At(i int) *Entry { return c.entries[i] }

// Patterns builds the Aho-Corasick automaton over every entry's magic
// bytes, in corpus order — the matcher's pattern index is then the
// corpus index, the bijection the scanner depends on.
func (c *Corpus) Patterns() ahocorasick.AhoCorasick {
	patterns := make([]string, len(c.entries))
	for i, e := range c.entries {
		patterns[i] = string(e.Magic)
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchKind:            ahocorasick.LeftMostFirstMatch,
		DFA:                  true,
	})
	return builder.Build(patterns)
}
