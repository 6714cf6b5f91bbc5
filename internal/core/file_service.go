package core

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem is the set of filesystem primitives the search pipeline depends on.
// FileService is the only production implementation; tests wrap it to inject failures.
type FileSystem interface {
	// ListEntries returns the immediate children of dir, joined onto dir.
	ListEntries(dir string) ([]string, error)
	// IsDir and IsFile report false when metadata cannot be read.
	IsDir(path string) bool
	IsFile(path string) bool
	ReadToString(path string) (string, error)
	// Canonicalize returns an absolute path with symlinks resolved where the
	// backing filesystem supports them.
	Canonicalize(path string) (string, error)
	// CreateFile creates or truncates path for writing.
	CreateFile(path string) (io.WriteCloser, error)
}

// FileService provides filesystem access on top of an afero filesystem.
// It is the ONLY component that should directly interact with the filesystem.
type FileService struct {
	fs afero.Fs
}

// FileServiceOptions configures the file service
type FileServiceOptions struct {
	// Fs defaults to the operating system filesystem
	Fs afero.Fs
}

// NewFileService creates a file service backed by the operating system filesystem
func NewFileService() *FileService {
	return NewFileServiceWithOptions(FileServiceOptions{})
}

// NewFileServiceWithOptions creates a file service with custom configuration
func NewFileServiceWithOptions(opts FileServiceOptions) *FileService {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileService{fs: fs}
}

// Fs exposes the backing filesystem, mainly for sinks that create files.
func (s *FileService) Fs() afero.Fs {
	return s.fs
}

func (s *FileService) ListEntries(dir string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		paths = append(paths, filepath.Join(dir, info.Name()))
	}
	return paths, nil
}

func (s *FileService) IsDir(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (s *FileService) IsFile(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *FileService) ReadToString(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FileService) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if _, ok := s.fs.(*afero.OsFs); ok {
		return filepath.EvalSymlinks(abs)
	}

	// In-memory filesystems have no symlinks; keep the existence check so a
	// missing path fails the same way it does on disk.
	if _, err := s.fs.Stat(abs); err != nil {
		return "", &os.PathError{Op: "canonicalize", Path: path, Err: err}
	}
	return abs, nil
}

func (s *FileService) CreateFile(path string) (io.WriteCloser, error) {
	return s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}
