// Package pathutil converts between absolute paths and paths relative to a search root.
//
// Paths flowing through a search stay absolute (or root-joined). Exclusion globs are
// written relative to the root with forward slashes, so matching goes through MatchKey.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToRelative converts path to one relative to rootDir.
// Falls back to the cleaned path when it is outside rootDir or cannot be related,
// and returns relative input unchanged.
//
// Examples:
//   - ToRelative("/data/project/src/a.txt", "/data/project") → "src/a.txt"
//   - ToRelative("/elsewhere/a.txt", "/data/project") → "/elsewhere/a.txt"
//   - ToRelative("src/a.txt", "/data/project") → "src/a.txt"
func ToRelative(path, rootDir string) string {
	if path == "" || rootDir == "" || !filepath.IsAbs(path) {
		return path
	}

	path = filepath.Clean(path)
	rel, err := filepath.Rel(filepath.Clean(rootDir), path)
	if err != nil || isOutside(rel) {
		return path
	}
	return rel
}

// MatchKey returns the slash-separated form of path relative to rootDir, the
// form exclusion globs are matched against.
func MatchKey(path, rootDir string) string {
	switch {
	case filepath.IsAbs(path):
		return filepath.ToSlash(ToRelative(path, rootDir))
	case rootDir == "" || filepath.IsAbs(rootDir):
		// already relative to the root
		return filepath.ToSlash(filepath.Clean(path))
	default:
		// both relative to the working directory
		if rel, err := filepath.Rel(rootDir, path); err == nil && !isOutside(rel) {
			return filepath.ToSlash(rel)
		}
		return filepath.ToSlash(filepath.Clean(path))
	}
}

func isOutside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
