package markup

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tagPattern = regexp.MustCompile(`</?[^>]+>`)

func innerText(fragment string) string {
	return tagPattern.ReplaceAllString(fragment, "")
}

func TestSplitLinesPlainText(t *testing.T) {
	lines, err := SplitLines("a\nb\nc", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestSplitLinesSpanAcrossTwoLines(t *testing.T) {
	lines, err := SplitLines(`<span class="string">line one
line two</span>`, 2)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, `<span class="string">line one</span>`, lines[0])
	assert.Equal(t, `<span class="string">line two</span>`, lines[1])
	assert.Equal(t, "line oneline two", innerText(lines[0])+innerText(lines[1]))
}

func TestSplitLinesNestedSpans(t *testing.T) {
	lines, err := SplitLines(`<span class="a"><span class="b">x
y</span>z</span>`, 2)
	require.NoError(t, err)
	assert.Equal(t, `<span class="a"><span class="b">x</span></span>`, lines[0])
	assert.Equal(t, `<span class="a"><span class="b">y</span>z</span>`, lines[1])
}

func TestSplitLinesDeepNestingAllLines(t *testing.T) {
	lines, err := SplitLines("<span class=\"a\"><span class=\"b\"><span class=\"c\">1\n2\n3</span></span></span>", 3)
	require.NoError(t, err)
	for i, line := range lines {
		for _, class := range []string{"a", "b", "c"} {
			assert.Contains(t, line, `<span class="`+class+`">`, "line %d", i)
		}
		assert.Equal(t, 3, strings.Count(line, "</span>"))
	}
}

func TestSplitLinesAttributesPreservedOnEveryFragment(t *testing.T) {
	lines, err := SplitLines("<span style=\"color: #f00\" data-tok=\"str\">x\ny</span>", 2)
	require.NoError(t, err)
	for _, line := range lines {
		assert.Contains(t, line, `style="color: #f00"`)
		assert.Contains(t, line, `data-tok="str"`)
	}
}

func TestSplitLinesEscapesText(t *testing.T) {
	lines, err := SplitLines("<span>a &lt; b\nc &amp; d</span>", 2)
	require.NoError(t, err)
	assert.Equal(t, "<span>a &lt; b</span>", lines[0])
	assert.Equal(t, "<span>c &amp; d</span>", lines[1])
}

func TestSplitLinesTrailingNewlineTolerance(t *testing.T) {
	// Highlighters usually emit a trailing newline; the extra empty
	// line must be absorbed, not reported.
	lines, err := SplitLines("a\nb\n", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestSplitLinesPadsShortMarkup(t *testing.T) {
	lines, err := SplitLines("only", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"only", "", ""}, lines)
}

func TestSplitLinesEmptyInput(t *testing.T) {
	lines, err := SplitLines("", 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
