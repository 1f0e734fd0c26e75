// Command carve is the driver: it opens the input image, builds the
// corpus, restricts it to any requested extensions, spawns the parallel
// scanner, and reports totals once every worker has joined.
package main

import (
	"fmt"
	"os"

	"github.com/shubham/carve/internal/audit"
	"github.com/shubham/carve/internal/corpus"
	"github.com/shubham/carve/internal/image"
	"github.com/shubham/carve/internal/progress"
	"github.com/shubham/carve/internal/scan"
)

const auditFileName = "audit.txt"

func run(opts *Options) error {
	log, err := configureLogger(opts)
	if err != nil {
		return err
	}

	img, err := image.Open(opts.InputFile)
	if err != nil {
		return err
	}
	defer img.Close()

	c := corpus.New(opts.MinSize)
	c.Retain(opts.ExtList)
	if c.Len() == 0 {
		return fmt.Errorf("no file types left to carve after applying --ext filter %v", opts.ExtList)
	}

	sink, err := audit.Open(auditFileName)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := sink.AddMetadata(opts.InputFile, int64(img.Len())); err != nil {
		return fmt.Errorf("writing audit metadata: %w", err)
	}

	numWorkers := int(opts.NumThreads)
	if numWorkers < 1 {
		numWorkers = 1
	}

	scanner := &scan.Scanner{
		Image:  img.Bytes(),
		Corpus: c,
		Sink:   sink,
		Opts: scan.Options{
			NumWorkers: numWorkers,
			Limit:      opts.Limit,
		},
		Log: log,
	}

	var dashboard *progress.Dashboard
	reporters := func(int) progress.Reporter { return progress.NoOp() }

	if opts.Progress {
		totals := make([]uint64, numWorkers)
		for i, rng := range scan.Split(img.Len(), numWorkers) {
			totals[i] = uint64(rng.End - rng.Start)
		}
		dashboard = progress.NewDashboard(totals)
		reporters = dashboard.Reporter

		done := make(chan error, 1)
		go func() { done <- dashboard.Run() }()
		defer func() {
			dashboard.Stop()
			<-done
		}()
	}

	log.Infof("scanning %q (%d bytes) with %d worker(s)", opts.InputFile, img.Len(), numWorkers)
	total := scanner.Run(reporters)

	fmt.Printf("\nRecovery complete. Found %d file(s) across %d worker(s).\n", total, numWorkers)
	return nil
}

func main() {
	opts := &Options{}
	cmd := newRootCmd(opts, run)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "carve: %v\n", err)
		os.Exit(1)
	}
}
