// Package filter keeps the text candidates whose content contains a needle.
package filter

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/debug"
	lfinderrors "github.com/standardbeagle/lfind/internal/errors"
	"github.com/standardbeagle/lfind/internal/types"
)

// Config for NewWithConfig. BatchCount is fixed per filter and independent of
// input size or CPU count; 0 means types.DefaultFilterBatchCount.
type Config struct {
	BatchCount int
	Logger     logrus.FieldLogger
}

type ContentFilter struct {
	fs         core.FileSystem
	batchCount int
	log        logrus.FieldLogger
}

// New creates a content filter with the default batch count
func New(fs core.FileSystem) *ContentFilter {
	return NewWithConfig(fs, nil)
}

// NewWithConfig creates a content filter with custom configuration
func NewWithConfig(fs core.FileSystem, cfg *Config) *ContentFilter {
	if cfg == nil {
		cfg = &Config{}
	}

	f := &ContentFilter{
		fs:         fs,
		batchCount: cfg.BatchCount,
		log:        cfg.Logger,
	}
	if f.batchCount <= 0 {
		f.batchCount = types.DefaultFilterBatchCount
	}
	if f.log == nil {
		f.log = debug.ForComponent(debug.ComponentFilter)
	}
	return f
}

func (f *ContentFilter) BatchCount() int {
	return f.batchCount
}

// Filter returns the TextCandidateFile occurrences whose content contains needle,
// re-tagged as PlainFile. Every other variant is dropped. The match is exact and
// case-sensitive; an empty needle matches every readable candidate.
//
// The order of the result follows completion order across batches, not input order.
// A file that cannot be read is logged and counts as no match. All workers have
// finished when Filter returns.
func (f *ContentFilter) Filter(occurrences []types.Occurrence, needle string) ([]types.Occurrence, error) {
	if len(occurrences) == 0 {
		return []types.Occurrence{}, nil
	}

	// Buffered to the input size so workers never block on the collector
	matches := make(chan types.Occurrence, len(occurrences))

	var g errgroup.Group
	for _, batch := range Partition(occurrences, f.batchCount) {
		g.Go(func() error {
			for _, occ := range batch {
				if f.matches(occ, needle) {
					matches <- types.PlainFile(occ.Path())
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(matches)
	}()

	results := make([]types.Occurrence, 0)
	for occ := range matches {
		results = append(results, occ)
	}
	if err := <-done; err != nil {
		return nil, err
	}

	debug.Log(debug.ComponentFilter, "kept %d of %d entries containing %q\n", len(results), len(occurrences), needle)
	return results, nil
}

func (f *ContentFilter) matches(occ types.Occurrence, needle string) bool {
	candidate, ok := occ.(types.TextCandidateFile)
	if !ok {
		return false
	}

	content, err := f.fs.ReadToString(candidate.Path())
	if err != nil {
		f.log.WithError(lfinderrors.NewContentReadError(candidate.Path(), err)).
			WithField("path", candidate.Path()).
			Warn("skipping candidate that cannot be read")
		return false
	}
	return strings.Contains(content, needle)
}

// Partition splits items into contiguous batches of ceil(len/batchCount).
func Partition[T any](items []T, batchCount int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if batchCount <= 0 {
		batchCount = 1
	}

	size := (len(items) + batchCount - 1) / batchCount
	batches := make([][]T, 0, batchCount)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end:end])
	}
	return batches
}
