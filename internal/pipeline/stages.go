package pipeline

import (
	"github.com/standardbeagle/lfind/internal/discovery"
	"github.com/standardbeagle/lfind/internal/filter"
	"github.com/standardbeagle/lfind/internal/output"
	"github.com/standardbeagle/lfind/internal/types"
	"github.com/standardbeagle/lfind/pkg/sortutil"
)

// Stage names
const (
	StageDiscover = "discover"
	StageFilter   = "filter"
	StageSort     = "sort"
	StageOutput   = "output"
)

// DiscoverStage replaces the results with every entry under root named sc.Query
func DiscoverStage(engine *discovery.Engine, root string) Stage {
	return Stage{
		Name: StageDiscover,
		Run: func(sc *types.SearchContext) error {
			results, err := engine.Discover(root, sc.Query)
			if err != nil {
				return err
			}
			sc.Results = results
			return nil
		},
	}
}

// FilterStage keeps the text candidates containing needle
func FilterStage(f *filter.ContentFilter, needle string) Stage {
	return Stage{
		Name: StageFilter,
		Run: func(sc *types.SearchContext) error {
			results, err := f.Filter(sc.Results, needle)
			if err != nil {
				return err
			}
			sc.Results = results
			return nil
		},
	}
}

// SortStage orders the results by path
func SortStage() Stage {
	return Stage{
		Name: StageSort,
		Run: func(sc *types.SearchContext) error {
			sortutil.Sort(sc.Results, func(a, b types.Occurrence) bool {
				return a.Path() < b.Path()
			})
			return nil
		},
	}
}

// OutputStage hands the results to sink
func OutputStage(sink output.Sink) Stage {
	return Stage{
		Name: StageOutput,
		Run: func(sc *types.SearchContext) error {
			return sink.Emit(sc.Results)
		},
	}
}
