package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderEntryPadsToPaneWidth(t *testing.T) {
	m := testModel()
	entry := m.renderEntry("short summary", "2026-01-02", 1, 30)
	assert.Equal(t, 30, lipgloss.Width(entry))
}

func TestRenderEntryTruncatesLongSummary(t *testing.T) {
	m := testModel()
	entry := m.renderEntry("a very long commit summary that cannot possibly fit", "2026-01-02", 1, 24)
	assert.Equal(t, 24, lipgloss.Width(entry))
	assert.Contains(t, entry, "…")
}

func TestRenderEntryTruncatesWideRunes(t *testing.T) {
	m := testModel()
	// Double-width runes must be measured in columns, not runes.
	entry := m.renderEntry("日本語のコミットメッセージがとても長い", "2026-01-02", 1, 24)
	assert.LessOrEqual(t, lipgloss.Width(entry), 24)
}

func TestRenderEntryWorkingCopyRow(t *testing.T) {
	m := testModel()
	entry := m.renderEntry("working copy", "", 0, 30)
	assert.Equal(t, 30, lipgloss.Width(entry))
}
