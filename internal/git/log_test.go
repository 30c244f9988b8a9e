package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	out := "aaaa1111\t1700000000\tfix tab handling\n" +
		"bbbb2222\t1690000000\tinitial commit\n"
	commits := parseLog(out)
	require.Len(t, commits, 2)
	assert.Equal(t, "aaaa1111", commits[0].Hash)
	assert.Equal(t, time.Unix(1700000000, 0), commits[0].Date)
	assert.Equal(t, "fix tab handling", commits[0].Summary)
	assert.Equal(t, "initial commit", commits[1].Summary)
}

func TestParseLogSummaryWithTabs(t *testing.T) {
	commits := parseLog("cccc3333\t1700000000\tsummary\twith\ttabs\n")
	require.Len(t, commits, 1)
	assert.Equal(t, "summary\twith\ttabs", commits[0].Summary)
}

func TestParseLogEmptyAndMalformed(t *testing.T) {
	assert.Empty(t, parseLog(""))
	assert.Empty(t, parseLog("\n\n"))
	assert.Empty(t, parseLog("justahash\n"))
	assert.Empty(t, parseLog("hash\tnotanumber\tsummary\n"))
}

func TestCommitShort(t *testing.T) {
	assert.Equal(t, "aaaabbbb", Commit{Hash: "aaaabbbbccccdddd"}.Short())
	assert.Equal(t, "abc", Commit{Hash: "abc"}.Short())
}
