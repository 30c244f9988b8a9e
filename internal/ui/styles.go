package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kateleext/lookback/internal/align"
)

var (
	// Palette: 109=cyan, 241=dim, 252=bright
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("109"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneBorder    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241"))
)

// Background escape codes for diff tinting. Raw codes rather than
// lipgloss styles because they are re-injected after every ANSI reset
// the highlighter emits (see InjectBackground).
const (
	addBackground    = "\033[48;5;22m"
	deleteBackground = "\033[48;5;52m"
)

func kindBackground(k align.Kind) string {
	switch k {
	case align.Add:
		return addBackground
	case align.Delete:
		return deleteBackground
	default:
		return ""
	}
}
