// Package testhelpers provides shared fixtures for testing lfind
package testhelpers

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/standardbeagle/lfind/internal/core"
)

// TestTreeBuilder describes a directory tree that can be materialised either in an
// in-memory filesystem or under a temporary directory on disk.
type TestTreeBuilder struct {
	files map[string]string
	dirs  []string
}

// NewTestTreeBuilder creates an empty tree description
func NewTestTreeBuilder() *TestTreeBuilder {
	return &TestTreeBuilder{files: make(map[string]string)}
}

// AddFile adds a file at the slash-separated relative path; parents are implied
func (b *TestTreeBuilder) AddFile(rel, content string) *TestTreeBuilder {
	b.files[rel] = content
	return b
}

// AddFiles adds every entry of files
func (b *TestTreeBuilder) AddFiles(files map[string]string) *TestTreeBuilder {
	for rel, content := range files {
		b.AddFile(rel, content)
	}
	return b
}

// AddDir adds an (empty) directory at the relative path
func (b *TestTreeBuilder) AddDir(rel string) *TestTreeBuilder {
	b.dirs = append(b.dirs, rel)
	return b
}

// BuildMem writes the tree under root in a fresh in-memory filesystem and returns
// a file service over it.
func (b *TestTreeBuilder) BuildMem(t testing.TB, root string) *core.FileService {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create root %s: %v", root, err)
	}
	for _, dir := range b.dirs {
		if err := fs.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	for _, rel := range b.sortedFiles() {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := fs.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", rel, err)
		}
		if err := afero.WriteFile(fs, full, []byte(b.files[rel]), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	return core.NewFileServiceWithOptions(core.FileServiceOptions{Fs: fs})
}

// BuildOnDisk writes the tree under t.TempDir() and returns the absolute root,
// with symlinks resolved so it can be compared against canonicalized output.
func (b *TestTreeBuilder) BuildOnDisk(t testing.TB) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	for _, dir := range b.dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	for _, rel := range b.sortedFiles() {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(b.files[rel]), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}

func (b *TestTreeBuilder) sortedFiles() []string {
	keys := make([]string, 0, len(b.files))
	for k := range b.files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
