package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	listMaxWidth = 40
	headerHeight = 1
	footerHeight = 1
)

func (m Model) listWidth() int {
	w := m.width / 3
	if w > listMaxWidth {
		w = listMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) diffWidth() int {
	w := m.width - m.listWidth() - 1
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) diffHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.vp.Width = m.diffWidth()
	m.vp.Height = m.diffHeight()
	if len(m.merged) == 0 {
		text := m.notice
		if text == "" {
			text = "loading…"
		}
		m.vp.SetContent(noticeStyle.Render(text))
		return
	}
	m.vp.SetContent(m.diffContent())
}

// diffContent renders the wrapped visual lines with their gutters and
// add/delete background tinting.
func (m Model) diffContent() string {
	var b strings.Builder
	for _, vl := range m.visual {
		line := "  " + vl.Gutter + vl.Text
		if bg := kindBackground(vl.Kind); bg != "" {
			line = InjectBackground(line, bg) + ansiReset
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "lookback"
	}

	header := titleStyle.Render(m.path)
	if m.notice != "" && len(m.merged) > 0 {
		header += "  " + noticeStyle.Render(m.notice)
	}

	list := m.renderList()
	diff := m.vp.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		list,
		paneBorder.BorderTop(false).BorderBottom(false).BorderRight(false).Render(diff),
	)

	footer := m.renderFooter()
	return header + "\n" + body + "\n" + footer
}

func (m Model) renderList() string {
	width := m.listWidth()
	height := m.diffHeight()

	entries := make([]string, 0, len(m.commits)+1)
	entries = append(entries, m.renderEntry("working copy", "", 0, width))
	for i, c := range m.commits {
		date := c.Date.Format("2006-01-02")
		entries = append(entries, m.renderEntry(c.Summary, date, i+1, width))
	}

	// Keep the selection visible in a window of the pane's height.
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	end := start + height
	if end > len(entries) {
		end = len(entries)
	}
	visible := entries[start:end]

	for len(visible) < height {
		visible = append(visible, strings.Repeat(" ", width))
	}
	return strings.Join(visible, "\n")
}

func (m Model) renderEntry(summary, date string, index, width int) string {
	text := summary
	if date != "" {
		text = dimStyle.Render(date) + " " + summary
	}
	avail := width - 1
	if lipgloss.Width(text) > avail {
		// Truncate the summary by display columns; dates are fixed
		// width so only the summary tail is lost. Column-based
		// truncation keeps double-width runes inside the pane.
		dateWidth := 0
		if date != "" {
			dateWidth = lipgloss.Width(date) + 1
		}
		summary = runewidth.Truncate(summary, max(avail-dateWidth, 1), "…")
		if date != "" {
			text = dimStyle.Render(date) + " " + summary
		} else {
			text = summary
		}
	}

	style := entryStyle
	if index == m.selected {
		style = selectedStyle
	}
	padded := text + strings.Repeat(" ", max(0, avail-lipgloss.Width(text)))
	return style.Render(" " + padded)
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return statusStyle.Render(" " + m.status)
	}
	help := []string{
		keys.Up.Help().Key + "/" + keys.Down.Help().Key + " select",
		keys.Mark.Help().Key + " mark",
		keys.Back.Help().Key + " back",
		keys.Export.Help().Key + " export",
		keys.Quit.Help().Key + " quit",
	}
	return statusStyle.Render(" " + strings.Join(help, "  ·  "))
}
