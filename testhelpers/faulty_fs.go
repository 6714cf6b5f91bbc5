package testhelpers

import (
	"io"
	"sync"

	"github.com/standardbeagle/lfind/internal/core"
)

// FaultyFileSystem wraps a core.FileSystem and fails selected operations by path.
// Reads are counted so tests can check which files a stage touched.
type FaultyFileSystem struct {
	core.FileSystem

	ListErrors         map[string]error
	ReadErrors         map[string]error
	CanonicalizeErrors map[string]error
	CreateErrors       map[string]error

	mu    sync.Mutex
	reads map[string]int
}

// NewFaultyFileSystem wraps inner with no failures configured
func NewFaultyFileSystem(inner core.FileSystem) *FaultyFileSystem {
	return &FaultyFileSystem{
		FileSystem:         inner,
		ListErrors:         make(map[string]error),
		ReadErrors:         make(map[string]error),
		CanonicalizeErrors: make(map[string]error),
		CreateErrors:       make(map[string]error),
		reads:              make(map[string]int),
	}
}

func (f *FaultyFileSystem) ListEntries(dir string) ([]string, error) {
	if err, ok := f.ListErrors[dir]; ok {
		return nil, err
	}
	return f.FileSystem.ListEntries(dir)
}

func (f *FaultyFileSystem) ReadToString(path string) (string, error) {
	f.mu.Lock()
	f.reads[path]++
	f.mu.Unlock()

	if err, ok := f.ReadErrors[path]; ok {
		return "", err
	}
	return f.FileSystem.ReadToString(path)
}

func (f *FaultyFileSystem) Canonicalize(path string) (string, error) {
	if err, ok := f.CanonicalizeErrors[path]; ok {
		return "", err
	}
	return f.FileSystem.Canonicalize(path)
}

func (f *FaultyFileSystem) CreateFile(path string) (io.WriteCloser, error) {
	if err, ok := f.CreateErrors[path]; ok {
		return nil, err
	}
	return f.FileSystem.CreateFile(path)
}

// Reads returns how many times path was read
func (f *FaultyFileSystem) Reads(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads[path]
}
