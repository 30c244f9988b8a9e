package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kateleext/lookback/internal/align"
	"github.com/kateleext/lookback/internal/git"
	"github.com/kateleext/lookback/internal/highlight"
	"github.com/kateleext/lookback/internal/render"
	"github.com/kateleext/lookback/internal/watcher"
)

// DevBuild enables extra status output
var DevBuild bool

const gitTimeout = 10 * time.Second

// Model is the bubbletea model. Selection index 0 is the working copy
// diffed against HEAD; index i > 0 is commits[i-1] diffed against its
// parent.
type Model struct {
	dir  string // repo root
	path string // repo-relative file path

	commits  []git.Commit
	selected int
	seq      int // render request token; responses carrying an older token are stale

	merged []align.LineRecord
	lines  []string // ANSI-highlighted lines, kept for re-wrapping on resize
	visual []VisualLine
	notice string
	status string

	marks []int // stack of marked selections for jump-back navigation

	vp     viewport.Model
	ready  bool
	width  int
	height int

	watch *watcher.Watcher
}

// New creates a UI model for one file inside a repository.
func New(dir, path string) Model {
	m := Model{dir: dir, path: path}
	w, err := watcher.New(filepath.Join(dir, path))
	if err == nil {
		w.Start()
		m.watch = w
	}
	return m
}

type commitsMsg struct {
	commits []git.Commit
	err     error
}

type diffMsg struct {
	seq    int
	merged []align.LineRecord
	lines  []string // ANSI-highlighted, one per merged record
	notice string
}

type fileChangedMsg struct{}

type exportedMsg struct {
	path string
	err  error
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCommits}
	if m.watch != nil {
		cmds = append(cmds, m.waitForChange)
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCommits() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()
	commits, err := git.Commits(ctx, m.dir, m.path)
	return commitsMsg{commits: commits, err: err}
}

func (m Model) waitForChange() tea.Msg {
	<-m.watch.Changes
	return fileChangedMsg{}
}

// renderDiff fetches both revisions, aligns them, and highlights the
// merged text. It captures the request token so the Update loop can
// discard the result if a newer selection has superseded it.
func (m Model) renderDiff(seq int) tea.Cmd {
	dir, path, sel := m.dir, m.path, m.selected
	commits := m.commits
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
		defer cancel()

		var oldText, newText string
		var oldOK, newOK bool
		if sel == 0 {
			oldText, oldOK = git.Show(ctx, dir, "HEAD", path)
			newText, newOK = git.WorkingCopy(dir, path)
		} else {
			c := commits[sel-1]
			oldText, oldOK = git.Show(ctx, dir, c.Hash+"^", path)
			newText, newOK = git.Show(ctx, dir, c.Hash, path)
		}

		merged := align.Merge(align.SplitText(oldText), align.SplitText(newText))

		notice := ""
		switch {
		case !oldOK && !newOK:
			notice = "content unavailable"
		case len(merged) == 0:
			notice = "no differences"
		case allSame(merged):
			notice = "no differences"
		}

		return diffMsg{
			seq:    seq,
			merged: merged,
			lines:  highlightMerged(path, merged),
			notice: notice,
		}
	}
}

func allSame(merged []align.LineRecord) bool {
	for _, rec := range merged {
		if rec.Kind != align.Same {
			return false
		}
	}
	return true
}

// terminalHighlight is swapped out in tests to exercise the fallback.
var terminalHighlight = highlight.Terminal

// highlightMerged highlights the whole merged text in one pass and
// splits it back into one self-contained ANSI line per merged record.
// Highlighting failures fall back to the raw line texts.
func highlightMerged(path string, merged []align.LineRecord) []string {
	if len(merged) == 0 {
		return nil
	}
	out, err := terminalHighlight(path, align.MergedText(merged))
	if err != nil {
		lines := make([]string, len(merged))
		for i, rec := range merged {
			lines[i] = rec.Text
		}
		return lines
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for len(lines) < len(merged) {
		lines = append(lines, "")
	}
	if len(lines) > len(merged) {
		lines = lines[:len(merged)]
	}
	return carryANSI(lines)
}

func (m Model) requestRender() (Model, tea.Cmd) {
	m.seq++
	m.status = "loading " + m.revisionLabel()
	return m, m.renderDiff(m.seq)
}

func (m Model) revisionLabel() string {
	if m.selected == 0 {
		return "working copy"
	}
	return m.commits[m.selected-1].Short()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			if m.watch != nil {
				m.watch.Close()
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
				return m.requestRender()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.selected < len(m.commits) {
				m.selected++
				return m.requestRender()
			}
			return m, nil

		case key.Matches(msg, keys.Mark):
			m.marks = append(m.marks, m.selected)
			m.status = "marked " + m.revisionLabel()
			return m, nil

		case key.Matches(msg, keys.Back):
			if n := len(m.marks); n > 0 {
				m.selected = m.marks[n-1]
				m.marks = m.marks[:n-1]
				return m.requestRender()
			}
			return m, nil

		case key.Matches(msg, keys.Export):
			if len(m.merged) == 0 {
				m.status = "nothing to export"
				return m, nil
			}
			return m, m.exportDiff()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(m.diffWidth(), m.diffHeight())
			m.ready = true
		}
		// Re-wrap the kept highlighted lines at the new width; the
		// viewport itself is only resized so the scroll position
		// survives.
		m.visual = wrapAllLines(m.lines, m.merged, m.diffWidth())
		m.refreshViewport()
		return m, nil

	case commitsMsg:
		m.commits = msg.commits
		if msg.err != nil && DevBuild {
			m.status = fmt.Sprintf("git log: %v", msg.err)
		}
		if m.selected > len(m.commits) {
			m.selected = 0
		}
		next, cmd := m.requestRender()
		return next, cmd

	case diffMsg:
		if msg.seq != m.seq {
			// A newer selection superseded this render.
			return m, nil
		}
		m.merged = msg.merged
		m.lines = msg.lines
		m.notice = msg.notice
		m.status = ""
		m.visual = wrapAllLines(msg.lines, msg.merged, m.diffWidth())
		m.refreshViewport()
		return m, nil

	case fileChangedMsg:
		var cmds []tea.Cmd
		if m.watch != nil {
			cmds = append(cmds, m.waitForChange)
		}
		if m.selected == 0 {
			next, cmd := m.requestRender()
			cmds = append(cmds, cmd)
			return next, tea.Batch(cmds...)
		}
		return m, tea.Batch(cmds...)

	case exportedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

// exportDiff writes the current merged view as a standalone HTML page
// in the working directory.
func (m Model) exportDiff() tea.Cmd {
	path, merged := m.path, m.merged
	label := m.revisionLabel()
	return func() tea.Msg {
		markup, err := highlight.HTML(path, align.MergedText(merged))
		if err != nil {
			markup = ""
		}
		lines := render.Lines(merged, markup)
		doc := render.Document(path+" @ "+label, lines)

		name := fmt.Sprintf("lookback-%s-%s.html",
			strings.ReplaceAll(filepath.Base(path), ".", "_"),
			strings.ReplaceAll(label, " ", "-"))
		if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: name}
	}
}
