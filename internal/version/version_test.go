package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, commit, date string) {
	t.Helper()
	oldCommit, oldDate := Commit, Date
	Commit, Date = commit, date
	t.Cleanup(func() { Commit, Date = oldCommit, oldDate })
}

func TestFullInfo_Stamped(t *testing.T) {
	stamp(t, "0123456789abcdef0123", "2026-10-17")

	assert.Equal(t, "lfind 0.1.0 (0123456789ab, 2026-10-17)", FullInfo())
	assert.Equal(t, "0123456789ab", BuildID())
}

func TestFullInfo_ShortCommitWithoutDate(t *testing.T) {
	stamp(t, "abc123", "")

	assert.Equal(t, "lfind 0.1.0 (abc123)", FullInfo())
}

func TestFullInfo_Unstamped(t *testing.T) {
	stamp(t, "", "")

	if id := BuildID(); id != "" {
		assert.Equal(t, "lfind "+Version+" ("+id+")", FullInfo())
		return
	}
	assert.Equal(t, "lfind "+Version, FullInfo())
}
