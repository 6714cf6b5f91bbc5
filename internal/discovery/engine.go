// Package discovery walks a directory tree and collects every entry whose name
// equals the query.
package discovery

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/debug"
	lfinderrors "github.com/standardbeagle/lfind/internal/errors"
	"github.com/standardbeagle/lfind/internal/types"
	"github.com/standardbeagle/lfind/pkg/pathutil"
)

type Config struct {
	TextExtensions []string
	Exclude        []string // globs on root-relative slash paths; prunes whole subtrees
	Logger         logrus.FieldLogger
}

type Engine struct {
	fs             core.FileSystem
	textExtensions []string
	exclusions     []string
	log            logrus.FieldLogger
}

// New creates an engine with default classification and no exclusions
func New(fs core.FileSystem) *Engine {
	return NewWithConfig(fs, nil)
}

// NewWithConfig creates an engine with custom configuration
func NewWithConfig(fs core.FileSystem, cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}

	e := &Engine{
		fs:             fs,
		textExtensions: cfg.TextExtensions,
		exclusions:     append([]string(nil), cfg.Exclude...),
		log:            cfg.Logger,
	}
	if len(e.textExtensions) == 0 {
		e.textExtensions = []string{types.DefaultTextExtension}
	}
	if e.log == nil {
		e.log = debug.ForComponent(debug.ComponentDiscovery)
	}
	return e
}

// Discover returns every entry below root whose base name equals name, in
// depth-first listing order. Results of a subdirectory come before the
// subdirectory itself when it matches too.
//
// Only a failure to list root is returned. Nested directories that cannot be
// listed are logged and skipped.
func (e *Engine) Discover(root, name string) ([]types.Occurrence, error) {
	entries, err := e.fs.ListEntries(root)
	if err != nil {
		return nil, lfinderrors.NewTraversalError(root, err)
	}

	results := make([]types.Occurrence, 0)
	e.walk(root, entries, name, &results)

	debug.LogSearch("discovered %d entries named %q under %s\n", len(results), name, root)
	return results, nil
}

func (e *Engine) walk(root string, entries []string, name string, results *[]types.Occurrence) {
	for _, entry := range entries {
		if e.excluded(root, entry) {
			continue
		}

		isDir := e.fs.IsDir(entry)
		if isDir {
			children, err := e.fs.ListEntries(entry)
			if err != nil {
				e.log.WithError(lfinderrors.NewTraversalError(entry, err)).
					WithField("dir", entry).
					Warn("skipping directory that cannot be listed")
			} else {
				e.walk(root, children, name, results)
			}
		}

		if filepath.Base(entry) == name {
			*results = append(*results, types.Classify(entry, isDir, e.textExtensions))
		}
	}
}

// excluded checks the entry against the exclusion globs using its root-relative path
func (e *Engine) excluded(root, entry string) bool {
	if len(e.exclusions) == 0 {
		return false
	}

	normalized := pathutil.MatchKey(entry, root)

	for _, pattern := range e.exclusions {
		matched, err := doublestar.Match(pattern, normalized)
		if err != nil {
			// Patterns are validated with the config; a bad one just never matches
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
