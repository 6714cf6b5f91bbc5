// Package version reports which lfind build is running.
package version

import (
	"runtime/debug"
	"strings"
)

// Version is the lfind release.
const Version = "0.1.0"

// Commit and Date are stamped by the release build:
//
//	go build -ldflags "-X github.com/standardbeagle/lfind/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Commit = ""
	Date   = ""
)

// FullInfo is the text printed by --version
func FullInfo() string {
	var b strings.Builder
	b.WriteString("lfind ")
	b.WriteString(Version)

	if rev := BuildID(); rev != "" {
		b.WriteString(" (" + rev)
		if Date != "" {
			b.WriteString(", " + Date)
		}
		b.WriteString(")")
	}
	return b.String()
}

// BuildID identifies the source revision: the stamped Commit, else the VCS
// revision recorded by the go tool (suffixed "-dirty" for modified trees),
// else "". Revisions are cut to 12 characters.
func BuildID() string {
	if Commit != "" {
		return short(Commit)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if dirty {
		return short(rev) + "-dirty"
	}
	return short(rev)
}

func short(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
