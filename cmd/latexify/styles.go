package main

import "github.com/charmbracelet/lipgloss"

var (
	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	infoNoticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorNoticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	progressNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
