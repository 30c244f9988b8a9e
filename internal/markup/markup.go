// Package markup re-splits a highlighter's HTML output into per-line
// fragments. Highlight spans may cover several lines of the source text
// (multi-line strings, block comments), but the diff view needs to tint
// and render each line on its own, so every produced fragment must be
// self-contained: tags opened on a line are closed on that line and
// re-opened on the next one the element's content reaches.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SplitLines parses fragment and returns exactly n per-line fragments.
// A trailing-newline mismatch between the markup and the caller's line
// count is absorbed by padding with empty lines or dropping trailing
// empty ones, never by failing.
func SplitLines(fragment string, n int) ([]string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, err
	}

	s := &splitter{lines: []*strings.Builder{{}}}
	for _, node := range nodes {
		s.walk(node)
	}

	out := make([]string, 0, n)
	for _, b := range s.lines {
		out = append(out, b.String())
	}
	for len(out) > n && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) > n {
		out = out[:n]
	}
	for len(out) < n {
		out = append(out, "")
	}
	return out, nil
}

type boundaryTag struct {
	open  string
	close string
}

type splitter struct {
	lines []*strings.Builder
	// Elements currently open around the cursor, outermost first. Each
	// line break closes them in reverse and re-opens them on the new
	// line so the element's attributes appear on every line it touches.
	open []boundaryTag
}

func (s *splitter) cur() *strings.Builder {
	return s.lines[len(s.lines)-1]
}

func (s *splitter) lineBreak() {
	for i := len(s.open) - 1; i >= 0; i-- {
		s.cur().WriteString(s.open[i].close)
	}
	s.lines = append(s.lines, &strings.Builder{})
	for _, tag := range s.open {
		s.cur().WriteString(tag.open)
	}
}

func (s *splitter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		for i, seg := range strings.Split(n.Data, "\n") {
			if i > 0 {
				s.lineBreak()
			}
			s.cur().WriteString(html.EscapeString(seg))
		}
	case html.ElementNode:
		tag := renderTag(n)
		s.cur().WriteString(tag.open)
		s.open = append(s.open, tag)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(c)
		}
		s.open = s.open[:len(s.open)-1]
		s.cur().WriteString(tag.close)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(c)
		}
	}
}

func renderTag(n *html.Node) boundaryTag {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, attr := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return boundaryTag{open: b.String(), close: "</" + n.Data + ">"}
}
