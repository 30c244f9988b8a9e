// Package highlight wraps chroma. Highlighting always runs over the
// whole merged text in one pass so multi-line constructs (block
// comments, raw strings) keep their syntax context; callers split the
// result back into lines afterwards.
package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	htmlformat "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Theme is a muted, zen color palette
var Theme = styles.Get("dracula")

func lexerFor(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// HTML highlights source as class-annotated span markup, one fragment
// for the whole input. Any failure is reported so the caller can fall
// back to plain escaped text.
func HTML(filename, source string) (string, error) {
	iterator, err := lexerFor(filename).Tokenise(nil, source)
	if err != nil {
		return "", err
	}

	formatter := htmlformat.New(
		htmlformat.WithClasses(true),
		htmlformat.PreventSurroundingPre(true),
	)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, Theme, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Terminal highlights source with ANSI 256-color escapes for the TUI.
func Terminal(filename, source string) (string, error) {
	iterator, err := lexerFor(filename).Tokenise(nil, source)
	if err != nil {
		return "", err
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, Theme, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}
