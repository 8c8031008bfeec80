package main

import tea "github.com/charmbracelet/bubbletea"

type programReadyMsg struct {
	program *tea.Program
}

type noticeMsg struct {
	kind noticeKind
	text string
}

type noticeExpireMsg struct {
	id int
}

type hideProgressMsg struct{}

type replaceSelectionMsg struct {
	region region
	text   string
}

type convertDoneMsg struct{}
