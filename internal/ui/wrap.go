package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/kateleext/lookback/internal/align"
)

// VisualLine represents one physical line in the diff viewport
type VisualLine struct {
	LogicalIndex int        // index into the merged view
	SegmentIndex int        // 0 = first segment, 1+ = continuations
	Gutter       string     // "+ ", "- ", "· ", or "  " for continuations
	Text         string     // ANSI-highlighted content slice
	Kind         align.Kind // add/delete/same, drives background tinting
}

const gutterWidth = 4 // "  · " or "  + " etc

const ansiReset = "\033[0m"

// InjectBackground replaces all ANSI resets with reset+background so the
// line keeps its tint across highlighted tokens. This is the terminal
// analogue of re-opening a markup span after a line break: every reset
// emitted by the highlighter would otherwise drop the add/delete tint.
func InjectBackground(s string, bgCode string) string {
	if bgCode == "" {
		return s
	}
	return bgCode + strings.ReplaceAll(s, ansiReset, ansiReset+bgCode)
}

// countLeadingSpaces returns the visual width of leading whitespace
func countLeadingSpaces(s string) int {
	count := 0
	for _, r := range s {
		if r == ' ' {
			count++
		} else if r == '\t' {
			count += 4
		} else {
			break
		}
	}
	return count
}

func runeVisualWidth(r rune) int {
	if r == '\t' {
		return 4 // render tabs as 4 columns
	}
	return runewidth.RuneWidth(r)
}

// VisibleWidth returns visual column width, ignoring ANSI sequences
func VisibleWidth(s string) int {
	width := 0
	i := 0
	for i < len(s) {
		if isANSIStart(s, i) {
			i = skipANSI(s, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		width += runeVisualWidth(r)
		i += size
	}
	return width
}

func isANSIStart(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	return s[i] == 0x1b && s[i+1] == '['
}

func skipANSI(s string, i int) int {
	if !isANSIStart(s, i) {
		return i + 1
	}
	j := i + 2
	for j < len(s) {
		b := s[j]
		if b >= 0x40 && b <= 0x7E {
			return j + 1
		}
		j++
	}
	return j
}

// carryANSI makes each highlighted line self-contained: codes still
// active at a line break are closed with a reset and re-applied at the
// start of the next line, so a colored token spanning several source
// lines survives being rendered line by line.
func carryANSI(lines []string) []string {
	active := ""
	out := make([]string, len(lines))
	for i, line := range lines {
		carried := active
		j := 0
		for j < len(line) {
			if !isANSIStart(line, j) {
				j++
				continue
			}
			start := j
			j = skipANSI(line, j)
			if seq := line[start:j]; seq == ansiReset {
				active = ""
			} else {
				active += seq
			}
		}
		s := carried + line
		if (active != "" || strings.Contains(s, "\033[")) && !strings.HasSuffix(s, ansiReset) {
			s += ansiReset
		}
		out[i] = s
	}
	return out
}

// sliceANSIAware slices a string to fit within maxWidth visible columns.
// Returns the slice, the remainder, and any ANSI codes still active at
// the cut so the continuation line can re-apply them.
func sliceANSIAware(s string, maxWidth int) (content string, remainder string, activeANSI string) {
	if maxWidth <= 0 {
		return "", s, ""
	}

	var result strings.Builder
	var currentANSI strings.Builder
	width := 0
	i := 0
	cutPoint := -1

	for i < len(s) && width < maxWidth {
		if isANSIStart(s, i) {
			start := i
			i = skipANSI(s, i)
			ansi := s[start:i]
			result.WriteString(ansi)
			if ansi == ansiReset {
				currentANSI.Reset()
			} else {
				currentANSI.WriteString(ansi)
			}
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		rw := runeVisualWidth(r)

		if width+rw > maxWidth {
			cutPoint = i
			break
		}

		result.WriteString(s[i : i+size])
		width += rw
		i += size
	}

	if cutPoint == -1 {
		cutPoint = i
	}

	content = result.String()
	if currentANSI.Len() > 0 {
		content += ansiReset
		activeANSI = currentANSI.String()
	}

	if cutPoint < len(s) {
		remainder = s[cutPoint:]
	}

	return content, remainder, activeANSI
}

// wrapMergedLine splits one highlighted merged line into VisualLine
// segments with hanging indent; continuation lines keep the leading
// whitespace of the raw line and inherit its diff kind.
func wrapMergedLine(line string, logicalIndex int, maxWidth int, kind align.Kind, rawLine string) []VisualLine {
	if maxWidth <= gutterWidth {
		maxWidth = gutterWidth + 10
	}
	contentWidth := maxWidth - gutterWidth

	var firstGutter string
	switch kind {
	case align.Add:
		firstGutter = "+ "
	case align.Delete:
		firstGutter = "- "
	default:
		firstGutter = "· "
	}
	contGutter := "  "

	hangingIndent := countLeadingSpaces(rawLine)
	maxIndent := contentWidth / 2
	if hangingIndent > maxIndent {
		hangingIndent = maxIndent
	}
	hangingIndentStr := strings.Repeat(" ", hangingIndent)

	var result []VisualLine
	remaining := line
	segmentIndex := 0
	activeANSI := ""

	for {
		if activeANSI != "" && segmentIndex > 0 {
			remaining = activeANSI + remaining
		}

		availWidth := contentWidth
		if segmentIndex > 0 && hangingIndent > 0 {
			availWidth = contentWidth - hangingIndent
			if availWidth < 10 {
				availWidth = 10
			}
		}

		content, rest, newActiveANSI := sliceANSIAware(remaining, availWidth)

		gutter := contGutter
		if segmentIndex == 0 {
			gutter = firstGutter
		}

		text := content
		if segmentIndex > 0 && hangingIndent > 0 {
			text = hangingIndentStr + content
		}

		result = append(result, VisualLine{
			LogicalIndex: logicalIndex,
			SegmentIndex: segmentIndex,
			Gutter:       gutter,
			Text:         text,
			Kind:         kind,
		})

		if rest == "" {
			break
		}

		remaining = rest
		activeANSI = newActiveANSI
		segmentIndex++
	}

	return result
}

// wrapAllLines wraps every highlighted merged line for a given width.
// highlighted and merged run in lockstep, one entry per merged record.
func wrapAllLines(highlighted []string, merged []align.LineRecord, maxWidth int) []VisualLine {
	var result []VisualLine
	for i, line := range highlighted {
		kind := align.Same
		rawLine := ""
		if i < len(merged) {
			kind = merged[i].Kind
			rawLine = merged[i].Text
		}
		result = append(result, wrapMergedLine(line, i, maxWidth, kind, rawLine)...)
	}
	return result
}
