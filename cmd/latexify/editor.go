package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// region is a line-wise selection, both indexes inclusive.
type region struct {
	start int
	end   int
}

// editorModel wraps a textarea with an emacs-style mark: ctrl+space anchors
// the selection at the cursor line, cursor movement extends it.
type editorModel struct {
	ta   textarea.Model
	mark int // anchor line of an active selection, -1 when none
}

func newEditor() editorModel {
	ta := textarea.New()
	ta.Placeholder = "Describe an equation in plain language..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.Focus()

	return editorModel{ta: ta, mark: -1}
}

func (m *editorModel) setContent(s string) {
	m.ta.SetValue(s)
	m.mark = -1
}

func (m editorModel) content() string { return m.ta.Value() }

func (m *editorModel) setSize(width, height int) {
	if height < 1 {
		height = 1
	}

	m.ta.SetWidth(width)
	m.ta.SetHeight(height)
}

func (m *editorModel) toggleMark() {
	if m.mark >= 0 {
		m.mark = -1

		return
	}

	m.mark = m.ta.Line()
}

func (m *editorModel) clearMark() { m.mark = -1 }

func (m editorModel) selecting() bool { return m.mark >= 0 }

// selectionRegion returns the line range between the mark and the cursor.
func (m editorModel) selectionRegion() (region, bool) {
	if m.mark < 0 {
		return region{}, false
	}

	start, end := m.mark, m.ta.Line()
	if start > end {
		start, end = end, start
	}

	return region{start: start, end: end}, true
}

func (m editorModel) regionText(r region) string {
	lines := strings.Split(m.ta.Value(), "\n")
	if r.start >= len(lines) {
		return ""
	}

	if r.end >= len(lines) {
		r.end = len(lines) - 1
	}

	return strings.Join(lines[r.start:r.end+1], "\n")
}

// replaceRegion splices text over the region's lines. The buffer may have
// changed since the region was captured; the replacement still lands on the
// same line range, last writer wins.
func (m *editorModel) replaceRegion(r region, text string) {
	lines := strings.Split(m.ta.Value(), "\n")
	if r.start >= len(lines) {
		return
	}

	if r.end >= len(lines) {
		r.end = len(lines) - 1
	}

	out := make([]string, 0, len(lines))
	out = append(out, lines[:r.start]...)
	out = append(out, strings.Split(text, "\n")...)
	out = append(out, lines[r.end+1:]...)

	m.ta.SetValue(strings.Join(out, "\n"))
	m.mark = -1
}

func (m editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)

	return m, cmd
}

func (m editorModel) View() string { return m.ta.View() }
