package errors

import (
	"fmt"
	"os"
	"time"
)

// Error types for the lfind pipeline
type ErrorType string

const (
	// Traversal errors
	ErrorTypeTraversal ErrorType = "traversal"

	// File errors
	ErrorTypeContentRead  ErrorType = "content_read"
	ErrorTypeCanonicalize ErrorType = "canonicalize"
	ErrorTypePermission   ErrorType = "permission"

	// Output errors
	ErrorTypeSink ErrorType = "sink"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// TraversalError represents a directory that could not be listed
type TraversalError struct {
	Type       ErrorType
	Dir        string
	Underlying error
	Timestamp  time.Time
}

// NewTraversalError creates a new traversal error for dir
func NewTraversalError(dir string, err error) *TraversalError {
	errorType := ErrorTypeTraversal
	if os.IsPermission(err) {
		errorType = ErrorTypePermission
	}

	return &TraversalError{
		Type:       errorType,
		Dir:        dir,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *TraversalError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Dir, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *TraversalError) Unwrap() error {
	return e.Underlying
}

// FileError represents a per-file failure that the pipeline recovers from:
// an unreadable filter candidate or a path that cannot be canonicalized.
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewContentReadError creates a file error for a candidate that could not be read
func NewContentReadError(path string, err error) *FileError {
	return newFileError(ErrorTypeContentRead, "read", path, err)
}

// NewCanonicalizeError creates a file error for a path that could not be resolved
func NewCanonicalizeError(path string, err error) *FileError {
	return newFileError(ErrorTypeCanonicalize, "canonicalize", path, err)
}

func newFileError(errorType ErrorType, op, path string, err error) *FileError {
	if os.IsPermission(err) {
		errorType = ErrorTypePermission
	}
	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *FileError) Error() string {
	return fmt.Sprintf("file %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// SinkError represents a failure to open or write the output destination
type SinkError struct {
	Type        ErrorType
	Destination string
	Operation   string
	Underlying  error
	Timestamp   time.Time
}

// NewSinkError creates a new sink error
func NewSinkError(op, destination string, err error) *SinkError {
	return &SinkError{
		Type:        ErrorTypeSink,
		Destination: destination,
		Operation:   op,
		Underlying:  err,
		Timestamp:   time.Now(),
	}
}

// Error implements the error interface
func (e *SinkError) Error() string {
	return fmt.Sprintf("output %s failed for %s: %v", e.Operation, e.Destination, e.Underlying)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// StageError wraps the error that aborted a pipeline stage
type StageError struct {
	Stage      string
	Underlying error
}

// NewStageError creates a new stage error
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Underlying: err}
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Underlying)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.Underlying
}
