// Package listing implements the ls command: the names of the regular files
// directly inside one directory.
package listing

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/debug"
	lfinderrors "github.com/standardbeagle/lfind/internal/errors"
)

// Lister lists regular files relative to a base directory.
type Lister struct {
	fs   core.FileSystem
	base string
}

// New creates a lister; relative paths are resolved against base
func New(fs core.FileSystem, base string) *Lister {
	return &Lister{fs: fs, base: base}
}

// Resolve returns path unchanged if absolute, otherwise joined onto the base directory
func (l *Lister) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.base, path)
}

// Files returns the base names of the regular files in dir, in listing order.
// Subdirectories are skipped. A directory that cannot be listed is an error.
func (l *Lister) Files(dir string) ([]string, error) {
	resolved := l.Resolve(dir)

	entries, err := l.fs.ListEntries(resolved)
	if err != nil {
		return nil, lfinderrors.NewTraversalError(resolved, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if l.fs.IsFile(entry) {
			names = append(names, filepath.Base(entry))
		}
	}

	debug.Log(debug.ComponentListing, "listed %d files of %d entries in %s\n", len(names), len(entries), resolved)
	return names, nil
}

// Print writes the file names of dir to w, one per line
func (l *Lister) Print(w io.Writer, dir string) error {
	names, err := l.Files(dir)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, name := range names {
		if _, err := bw.WriteString(name + "\n"); err != nil {
			return lfinderrors.NewSinkError("write", "stdout", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return lfinderrors.NewSinkError("write", "stdout", err)
	}
	return nil
}
