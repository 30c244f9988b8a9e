package align

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(merged []LineRecord) string {
	var b strings.Builder
	for _, rec := range merged {
		switch rec.Kind {
		case Same:
			b.WriteByte('=')
		case Add:
			b.WriteByte('+')
		case Delete:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func TestMergeIdentity(t *testing.T) {
	lines := []string{"package main", "", "func main() {}", ""}
	merged := Merge(lines, lines)
	require.Len(t, merged, len(lines))
	assert.Equal(t, "====", kinds(merged))
	assert.Equal(t, lines, Texts(merged, Same))
}

func TestMergeEmptyOld(t *testing.T) {
	merged := Merge(nil, []string{"hello"})
	require.Len(t, merged, 1)
	assert.Equal(t, LineRecord{Add, "hello"}, merged[0])
}

func TestMergeEmptyNew(t *testing.T) {
	merged := Merge([]string{"a", "b"}, nil)
	assert.Equal(t, "--", kinds(merged))
	assert.Equal(t, []string{"a", "b"}, Texts(merged, Delete))
}

func TestMergeBothEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
}

func TestMergeDeleteBeforeAddAtTie(t *testing.T) {
	merged := Merge([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	require.Equal(t, []LineRecord{
		{Same, "a"},
		{Delete, "b"},
		{Add, "x"},
		{Same, "c"},
	}, merged)
}

func TestMergeReconstruction(t *testing.T) {
	old := []string{"one", "two", "three", "", "four", "two"}
	new := []string{"zero", "two", "three", "five", "", "two", "six"}
	merged := Merge(old, new)
	assert.Equal(t, old, Texts(merged, Same, Delete))
	assert.Equal(t, new, Texts(merged, Same, Add))
	assert.LessOrEqual(t, len(merged), len(old)+len(new))
}

func TestMergeMinimality(t *testing.T) {
	// LCS of these is ["b", "c", "d"], so 2 deletes + 3 adds remain.
	old := []string{"a", "b", "c", "d", "e"}
	new := []string{"b", "x", "c", "y", "d", "z"}
	merged := Merge(old, new)
	changed := 0
	for _, rec := range merged {
		if rec.Kind != Same {
			changed++
		}
	}
	assert.Equal(t, len(old)+len(new)-2*3, changed)
}

func TestMergeDuplicateLines(t *testing.T) {
	old := []string{"x", "x", "x"}
	new := []string{"x", "x"}
	merged := Merge(old, new)
	assert.Equal(t, old, Texts(merged, Same, Delete))
	assert.Equal(t, new, Texts(merged, Same, Add))
	assert.Equal(t, 1, strings.Count(kinds(merged), "-"))
}

func TestSplitText(t *testing.T) {
	assert.Nil(t, SplitText(""))
	assert.Equal(t, []string{"a", "b"}, SplitText("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitText("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b", ""}, SplitText("a\n\nb\n\n"))
}

func TestMergedText(t *testing.T) {
	merged := Merge([]string{"a", "b"}, []string{"a", "c"})
	assert.Equal(t, "a\nb\nc", MergedText(merged))
}

func TestMergeDeterministic(t *testing.T) {
	old := []string{"m", "n", "o", "p"}
	new := []string{"n", "m", "p", "o"}
	first := Merge(old, new)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Merge(old, new))
	}
}
