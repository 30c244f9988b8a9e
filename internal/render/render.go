// Package render turns a merged line sequence plus whole-file highlight
// markup into per-line HTML ready for display or export.
package render

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/kateleext/lookback/internal/align"
	"github.com/kateleext/lookback/internal/markup"
)

// Line is one rendered line of the diff: its change classification and
// a self-contained HTML fragment.
type Line struct {
	Kind align.Kind
	HTML string
}

// Lines zips the merged view with the highlighter's markup. The output
// always has exactly one entry per merged record; if the markup cannot
// be split it falls back to plain escaped text, so highlighting is an
// enhancement and never a correctness dependency.
func Lines(merged []align.LineRecord, highlighted string) []Line {
	if highlighted == "" {
		return PlainLines(merged)
	}
	fragments, err := markup.SplitLines(highlighted, len(merged))
	if err != nil {
		return PlainLines(merged)
	}
	out := make([]Line, len(merged))
	for i, rec := range merged {
		out[i] = Line{Kind: rec.Kind, HTML: fragments[i]}
	}
	return out
}

// PlainLines renders the merged view without highlighting.
func PlainLines(merged []align.LineRecord) []Line {
	out := make([]Line, len(merged))
	for i, rec := range merged {
		out[i] = Line{Kind: rec.Kind, HTML: html.EscapeString(rec.Text)}
	}
	return out
}

var kindClass = map[align.Kind]string{
	align.Same:   "ctx",
	align.Add:    "add",
	align.Delete: "del",
}

// Document wraps rendered lines in a standalone HTML page for export.
func Document(title string, lines []Line) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString("body { background: #282a36; color: #f8f8f2; font-family: monospace; }\n")
	b.WriteString("pre { margin: 0; }\n")
	b.WriteString(".add { background: #1c3a1c; }\n")
	b.WriteString(".del { background: #3a1c1c; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	for _, line := range lines {
		b.WriteString(`<pre class="` + kindClass[line.Kind] + `">`)
		b.WriteString(line.HTML)
		b.WriteString("</pre>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
