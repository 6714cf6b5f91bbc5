// Package output writes search results as canonicalized absolute paths, one per line.
package output

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/debug"
	lfinderrors "github.com/standardbeagle/lfind/internal/errors"
	"github.com/standardbeagle/lfind/internal/types"
)

// Sink is the terminal stage of a search.
type Sink interface {
	Emit(results []types.Occurrence) error
}

// Config holds optional sink settings
type Config struct {
	// Logger receives warnings for paths that cannot be canonicalized.
	Logger logrus.FieldLogger
}

// ConsoleSink writes to an already open writer, normally stdout.
type ConsoleSink struct {
	w   io.Writer
	fs  core.FileSystem
	log logrus.FieldLogger
}

// NewConsoleSink creates a sink writing to w
func NewConsoleSink(w io.Writer, fs core.FileSystem, cfg *Config) *ConsoleSink {
	return &ConsoleSink{w: w, fs: fs, log: loggerFrom(cfg)}
}

// Emit writes one line per occurrence, in order
func (s *ConsoleSink) Emit(results []types.Occurrence) error {
	return writeLines(s.w, "stdout", s.fs, s.log, results)
}

// FileSink creates (or truncates) a file and writes the results into it.
type FileSink struct {
	path string
	fs   core.FileSystem
	log  logrus.FieldLogger
}

// NewFileSink creates a sink for the file at path. The file is not touched until Emit.
func NewFileSink(path string, fs core.FileSystem, cfg *Config) *FileSink {
	return &FileSink{path: path, fs: fs, log: loggerFrom(cfg)}
}

// Path returns the destination file
func (s *FileSink) Path() string {
	return s.path
}

// Emit creates or truncates the destination, even for an empty result, and
// writes one line per occurrence.
func (s *FileSink) Emit(results []types.Occurrence) (err error) {
	f, err := s.fs.CreateFile(s.path)
	if err != nil {
		return lfinderrors.NewSinkError("open", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = lfinderrors.NewSinkError("close", s.path, cerr)
		}
	}()

	return writeLines(f, s.path, s.fs, s.log, results)
}

// writeLines canonicalizes every path and writes it followed by a newline.
// A path that cannot be canonicalized is written as an empty line; the first
// write failure aborts the rest.
func writeLines(w io.Writer, dest string, fs core.FileSystem, log logrus.FieldLogger, results []types.Occurrence) error {
	bw := bufio.NewWriter(w)

	for _, occ := range results {
		line, err := fs.Canonicalize(occ.Path())
		if err != nil {
			log.WithError(lfinderrors.NewCanonicalizeError(occ.Path(), err)).
				WithField("path", occ.Path()).
				Warn("writing empty line for path that cannot be canonicalized")
			line = ""
		}

		if _, err := bw.WriteString(line); err != nil {
			return lfinderrors.NewSinkError("write", dest, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return lfinderrors.NewSinkError("write", dest, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return lfinderrors.NewSinkError("write", dest, err)
	}

	debug.Log(debug.ComponentOutput, "wrote %d paths to %s\n", len(results), dest)
	return nil
}

func loggerFrom(cfg *Config) logrus.FieldLogger {
	if cfg != nil && cfg.Logger != nil {
		return cfg.Logger
	}
	return debug.ForComponent(debug.ComponentOutput)
}
