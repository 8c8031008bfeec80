package main

import tea "github.com/charmbracelet/bubbletea"

// tuiNotifier delivers notices from the conversion goroutine to the update
// loop via Program.Send.
type tuiNotifier struct {
	program *tea.Program
}

func (n *tuiNotifier) Notify(text string) {
	n.program.Send(noticeMsg{kind: noticeInfo, text: text})
}

func (n *tuiNotifier) Alert(text string) {
	n.program.Send(noticeMsg{kind: noticeError, text: text})
}

func (n *tuiNotifier) Progress(text string) func() {
	n.program.Send(noticeMsg{kind: noticeProgress, text: text})

	return func() {
		n.program.Send(hideProgressMsg{})
	}
}

// tuiEditor captures the selection at dispatch time and applies the
// replacement through the update loop, so the textarea is only ever touched
// from Update. Two in-flight conversions race with last-writer-wins.
type tuiEditor struct {
	program   *tea.Program
	region    region
	selection string
}

func (e *tuiEditor) Selection() string { return e.selection }

func (e *tuiEditor) ReplaceSelection(text string) error {
	e.program.Send(replaceSelectionMsg{region: e.region, text: text})

	return nil
}
