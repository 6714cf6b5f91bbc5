package pipeline

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/standardbeagle/lfind/internal/config"
	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/discovery"
	"github.com/standardbeagle/lfind/internal/filter"
	"github.com/standardbeagle/lfind/internal/output"
	"github.com/standardbeagle/lfind/internal/types"
)

// Request describes one find invocation.
type Request struct {
	Root        string
	Query       string
	SortResults bool
	// OutputFile selects the file sink when set; stdout otherwise.
	OutputFile string
	// ContentFilter enables the content filter when non-nil. A pointer to ""
	// keeps every readable text candidate.
	ContentFilter *string
}

// Options carries the collaborators and tuning shared by every request.
type Options struct {
	FS             core.FileSystem
	Stdout         io.Writer
	TextExtensions []string
	Exclude        []string
	FilterWorkers  int
	// Logger is passed to every stage component; nil keeps their defaults.
	Logger logrus.FieldLogger
}

// OptionsFromConfig copies the search settings of cfg into Options
func OptionsFromConfig(cfg *config.Config, fs core.FileSystem, stdout io.Writer) Options {
	return Options{
		FS:             fs,
		Stdout:         stdout,
		TextExtensions: cfg.Search.TextExtensions,
		Exclude:        cfg.Exclude,
		FilterWorkers:  cfg.Search.FilterWorkers,
	}
}

// Build assembles the default stage order for req:
// discover, filter (if requested), sort (if requested), output.
func Build(req Request, opts Options) *Pipeline {
	fs := opts.FS
	if fs == nil {
		fs = core.NewFileService()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	engine := discovery.NewWithConfig(fs, &discovery.Config{
		TextExtensions: opts.TextExtensions,
		Exclude:        opts.Exclude,
		Logger:         opts.Logger,
	})

	stages := []Stage{DiscoverStage(engine, req.Root)}

	if req.ContentFilter != nil {
		cf := filter.NewWithConfig(fs, &filter.Config{
			BatchCount: opts.FilterWorkers,
			Logger:     opts.Logger,
		})
		stages = append(stages, FilterStage(cf, *req.ContentFilter))
	}

	if req.SortResults {
		stages = append(stages, SortStage())
	}

	var sink output.Sink
	if req.OutputFile != "" {
		sink = output.NewFileSink(req.OutputFile, fs, &output.Config{Logger: opts.Logger})
	} else {
		sink = output.NewConsoleSink(stdout, fs, &output.Config{Logger: opts.Logger})
	}
	stages = append(stages, OutputStage(sink))

	return New(stages...).WithLogger(opts.Logger)
}

// Execute builds the pipeline for req and runs it on a fresh SearchContext
func Execute(ctx context.Context, req Request, opts Options) error {
	sc := types.NewSearchContext(req.Query)
	return Build(req, opts).Run(ctx, sc)
}
