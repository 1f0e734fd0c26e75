// Package scan implements the parallel signature scanner: it splits the
// memory-mapped image into disjoint byte ranges, runs one worker
// goroutine per range with its own Aho-Corasick match iterator, and
// dispatches each match to the corpus-indicated carving strategy.
package scan

import (
	"fmt"
	"sync"
	"sync/atomic"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/sirupsen/logrus"

	"github.com/shubham/carve/internal/audit"
	"github.com/shubham/carve/internal/corpus"
	"github.com/shubham/carve/internal/progress"
)

// Options configures one scan run.
type Options struct {
	NumWorkers int
	// Limit stops a single worker early once it has carved more than
	// Limit files (so it carves at most Limit+1); 0 means unlimited.
	// Enforced per worker, not globally — see the design notes on this
	// open question.
	Limit uint64
}

// Range is a half-open [Start, End) byte interval of the image.
type Range struct {
	Start, End int
}

// Split divides an image of the given length into n disjoint, contiguous
// ranges covering it entirely; the last range absorbs any remainder so
// every byte belongs to exactly one worker.
func Split(length, n int) []Range {
	if n < 1 {
		n = 1
	}
	chunkSize := length / n
	ranges := make([]Range, n)
	for i := 0; i < n; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if i == n-1 {
			end = length
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}

// Scanner runs the parallel signature scan over Image using Corpus's
// entries and matcher.
type Scanner struct {
	Image  []byte
	Corpus *corpus.Corpus
	Sink   *audit.Sink
	Opts   Options
	Log    *logrus.Logger

	// NBFiles is incremented atomically for every successful carve across
	// all workers. It is advisory: the final summary uses Run's return
	// value instead, and it is not consulted to stop the scan.
	NBFiles uint64
}

// Reporters supplies one progress.Reporter per worker index; pass a func
// returning progress.NoOp() to disable reporting.
type Reporters func(worker int) progress.Reporter

// Run splits s.Image into Opts.NumWorkers disjoint ranges, scans each
// concurrently, and returns the total number of files carved across all
// workers. A panic in one worker is recovered, logged, and does not
// affect the others.
func (s *Scanner) Run(reporters Reporters) int {
	ac := s.Corpus.Patterns()
	ranges := Split(len(s.Image), s.Opts.NumWorkers)

	var wg sync.WaitGroup
	counts := make([]int, len(ranges))

	for i, rng := range ranges {
		wg.Add(1)
		go func(i int, rng Range) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.Log.Errorf("worker %d panicked: %v", i, r)
				}
			}()
			counts[i] = s.worker(i, rng, ac, reporters(i))
		}(i, rng)
	}

	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func (s *Scanner) worker(id int, rng Range, ac ahocorasick.AhoCorasick, reporter progress.Reporter) int {
	s.Log.Infof("starting worker %d on range [%d, %d)", id, rng.Start, rng.End)
	reporter.Update(0, "searching...")

	chunk := s.Image[rng.Start:rng.End]
	it := ac.Iter(string(chunk))

	found := 0
	for {
		m := it.Next()
		if m == nil {
			break
		}

		idx := m.Pattern()
		if idx < 0 || idx >= s.Corpus.Len() {
			continue
		}
		entry := s.Corpus.At(idx)

		absolute := rng.Start + m.Start()
		reporter.Update(uint64(m.Start()), fmt.Sprintf("checking %s @ 0x%X", entry.Ext, absolute))

		result, err := entry.Carve(s.Image[absolute:])
		if err != nil {
			s.Log.WithError(err).Debugf("carve attempt for %s at 0x%X aborted", entry.Ext, absolute)
			continue
		}
		if result.ConsumedBytes == 0 {
			continue
		}

		atomic.AddUint64(&s.NBFiles, 1)
		found++

		end := absolute + int(result.Length)
		if err := s.Sink.AddArtefact(audit.Record{
			Artifact:    result.FileName,
			OffsetStart: uint64(absolute),
			OffsetEnd:   uint64(end),
			Length:      result.Length,
		}); err != nil {
			s.Log.WithError(err).Error("failed to append audit record")
		}

		reporter.Update(uint64(m.Start()), result.FileName)
		s.Log.Debugf("carved %s at offset %d (len %d)", result.FileName, absolute, result.Length)

		if s.Opts.Limit > 0 && uint64(found) > s.Opts.Limit {
			break
		}
	}

	reporter.Done(fmt.Sprintf("finished, %d files found", found))
	s.Log.Infof("worker %d finished: %d files found", id, found)
	return found
}
