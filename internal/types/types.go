package types

import (
	"fmt"
	"strings"
)

// Common system-wide constants
const (
	// DefaultTextExtension marks a matched file as a candidate for content filtering.
	DefaultTextExtension = ".txt"

	// DefaultFilterBatchCount is the number of batches (and workers) the content
	// filter splits its input into. It does not scale with input size or CPU count.
	DefaultFilterBatchCount = 4

	// ConfigFileName is looked up in the home directory and in the search root.
	ConfigFileName = ".lfind.kdl"

	// TOMLConfigFileName is used when no KDL config exists in a directory.
	TOMLConfigFileName = ".lfind.toml"
)

// Kind discriminates the Occurrence variants.
type Kind uint8

const (
	KindDirectory Kind = iota
	KindPlainFile
	KindTextCandidateFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindPlainFile:
		return "file"
	case KindTextCandidateFile:
		return "text_file"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Occurrence is one matched filesystem entry. The set of implementations is closed:
// Directory, PlainFile and TextCandidateFile. Values are never mutated; a stage that
// needs a different kind builds a new value with the same path.
type Occurrence interface {
	Path() string
	Kind() Kind
	occurrence()
}

// Directory is a matched directory.
type Directory string

// PlainFile is a matched file that is not eligible for content filtering, or a text
// file whose content already matched.
type PlainFile string

// TextCandidateFile is a matched file whose name suggests text content.
type TextCandidateFile string

func (d Directory) Path() string { return string(d) }
func (d Directory) Kind() Kind   { return KindDirectory }
func (Directory) occurrence()    {}

func (f PlainFile) Path() string { return string(f) }
func (f PlainFile) Kind() Kind   { return KindPlainFile }
func (PlainFile) occurrence()    {}

func (f TextCandidateFile) Path() string { return string(f) }
func (f TextCandidateFile) Kind() Kind   { return KindTextCandidateFile }
func (TextCandidateFile) occurrence()    {}

// Classify applies the discovery-time classification rule. It only looks at the
// path and the directory flag, never at file content.
func Classify(path string, isDir bool, textExtensions []string) Occurrence {
	if isDir {
		return Directory(path)
	}
	for _, ext := range textExtensions {
		if ext != "" && strings.HasSuffix(path, ext) {
			return TextCandidateFile(path)
		}
	}
	return PlainFile(path)
}

// Paths extracts the path of every occurrence, preserving order.
func Paths(occurrences []Occurrence) []string {
	out := make([]string, len(occurrences))
	for i, occ := range occurrences {
		out[i] = occ.Path()
	}
	return out
}

// SearchContext is the state threaded through one pipeline run. Each stage replaces
// or reorders Results in place; nothing keeps a reference to a previous stage's slice.
type SearchContext struct {
	Query   string
	Results []Occurrence
}

// NewSearchContext creates an empty context for query.
func NewSearchContext(query string) *SearchContext {
	return &SearchContext{Query: query}
}
