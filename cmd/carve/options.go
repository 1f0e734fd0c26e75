package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options holds every command-line flag this tool accepts; flag names,
// shorts and defaults match the original CLI surface.
type Options struct {
	InputFile  string
	BufferSize uint
	MinSize    uint64
	NumThreads uint
	Limit      uint64
	ExtList    []string
	Progress   bool
	LogPath    string
	Verbosity  int
}

func newRootCmd(opts *Options, run func(*Options) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "carve",
		Short:         "Recover embedded files from a disk image by scanning for format signatures",
		Long:          "carve scans a raw disk image or arbitrary byte blob for known file-format signatures and reconstructs each genuine candidate it finds, writing an audit trail alongside the recovered files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.InputFile, "input", "i", "", "name and path of the input file to be carved (required)")
	flags.UintVarP(&opts.BufferSize, "buffer", "b", 4096, "length in bytes of the buffer used to look for patterns (kept for forward compatibility; not consulted by the chunk-parallel scanner)")
	flags.Uint64VarP(&opts.MinSize, "minsize", "m", 0, "if a discovered file's length is less than this, it is not carved")
	flags.UintVarP(&opts.NumThreads, "nbthreads", "n", 1, "number of worker threads to split the carving across")
	flags.Uint64VarP(&opts.Limit, "limit", "l", 0, "stop each worker once it has carved more than this many files (0 = unlimited)")
	flags.StringSliceVarP(&opts.ExtList, "ext", "e", nil, "comma-separated list of extensions to carve (default: all)")
	flags.BoolVarP(&opts.Progress, "progress", "p", false, "display a live per-worker progress dashboard")
	flags.StringVar(&opts.LogPath, "log", "", "write logs to this file instead of stderr")
	flags.CountVarP(&opts.Verbosity, "verbose", "v", "verbosity, from info (-v) to trace (-vvvvv)")

	cmd.MarkFlagRequired("input")

	return cmd
}

// configureLogger maps the -v count onto logrus levels the way the
// original CLI maps its count onto off/info/warn/error/debug/trace, and
// routes output to --log when given.
func configureLogger(opts *Options) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case opts.Verbosity <= 0:
		log.SetOutput(io.Discard)
	case opts.Verbosity == 1:
		log.SetLevel(logrus.InfoLevel)
	case opts.Verbosity == 2:
		log.SetLevel(logrus.WarnLevel)
	case opts.Verbosity == 3:
		log.SetLevel(logrus.ErrorLevel)
	case opts.Verbosity == 4:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.TraceLevel)
	}

	if opts.Verbosity > 0 && opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %q: %w", opts.LogPath, err)
		}
		log.SetOutput(f)
	} else if opts.Verbosity > 0 {
		log.SetOutput(os.Stderr)
	}

	return log, nil
}
