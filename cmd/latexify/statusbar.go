package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusView renders a single line with the current mode on the left and
// the active model on the right.
func (m appModel) statusView() string {
	mode := "EDIT"

	switch {
	case m.state == stateConverting:
		mode = "CONVERTING"
	case m.editor.selecting():
		if reg, ok := m.editor.selectionRegion(); ok {
			mode = fmt.Sprintf("SELECT %d-%d", reg.start+1, reg.end+1)
		}
	}

	left := modeStyle.Render(" " + mode + " ")
	right := statusStyle.Render(m.cfg.OllamaModel + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}
