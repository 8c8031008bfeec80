package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/okaire/latexify/pkg/convert"
	"github.com/okaire/latexify/pkg/ollama"
	"github.com/okaire/latexify/pkg/settings"
)

// appState represents the application state machine.
type appState int

const (
	stateEditing appState = iota
	stateConverting
)

// appModel is the root bubbletea model: a scratchpad editor with a
// selection mode and the convert-to-LaTeX command bound to ctrl+l.
type appModel struct {
	ctx      context.Context
	cfg      settings.Settings
	client   *ollama.Client
	program  *tea.Program
	editor   editorModel
	notices  noticeModel
	state    appState
	showHelp bool
	filePath string // optional file backing the scratchpad
	width    int
	height   int
}

func newAppModel(ctx context.Context, cfg settings.Settings, client *ollama.Client, filePath string) (appModel, error) {
	ed := newEditor()

	if filePath != "" {
		data, err := os.ReadFile(filePath) //nolint:gosec // path is given by the user on the command line
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return appModel{}, fmt.Errorf("open %s: %w", filePath, err)
		}

		ed.setContent(string(data))
	}

	return appModel{
		ctx:      ctx,
		cfg:      cfg,
		client:   client,
		editor:   ed,
		filePath: filePath,
		state:    stateEditing,
	}, nil
}

func (m appModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Two lines are reserved below the editor: status bar and notices.
		m.editor.setSize(msg.Width, msg.Height-2)
		initMarkdownRenderer(msg.Width)

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case programReadyMsg:
		m.program = msg.program

		return m, nil

	case noticeMsg:
		cmd := m.notices.show(msg)

		return m, cmd

	case noticeExpireMsg:
		m.notices.expire(msg.id)

		return m, nil

	case hideProgressMsg:
		m.notices.hideProgress()

		return m, nil

	case replaceSelectionMsg:
		m.editor.replaceRegion(msg.region, msg.text)

		return m, nil

	case convertDoneMsg:
		m.state = stateEditing

		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+g":
		m.showHelp = !m.showHelp

		return m, nil

	case "esc":
		if m.showHelp {
			m.showHelp = false

			return m, nil
		}

		m.editor.clearMark()

		return m, nil

	case "ctrl+@": // ctrl+space
		m.editor.toggleMark()

		return m, nil

	case "ctrl+s":
		return m, m.saveFile()

	case "ctrl+l":
		return m.startConvert()
	}

	if m.showHelp {
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

// startConvert captures the current selection and runs the conversion in a
// command goroutine. Nothing prevents a second conversion while one is in
// flight; the last replacement to arrive wins.
func (m appModel) startConvert() (tea.Model, tea.Cmd) {
	if m.program == nil {
		return m, nil
	}

	reg, ok := m.editor.selectionRegion()

	var sel string
	if ok {
		sel = m.editor.regionText(reg)
	}

	ed := &tuiEditor{program: m.program, region: reg, selection: sel}
	conv := convert.New(m.client, m.cfg, &tuiNotifier{program: m.program})

	m.state = stateConverting
	ctx := m.ctx

	return m, func() tea.Msg {
		_ = conv.Run(ctx, ed) // failures surface through the notifier

		return convertDoneMsg{}
	}
}

func (m appModel) saveFile() tea.Cmd {
	if m.filePath == "" {
		return notifyCmd(noticeInfo, "No file to save. Start latexify with a file argument.")
	}

	content, path := m.editor.content(), m.filePath

	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return noticeMsg{kind: noticeError, text: "Save failed: " + err.Error()}
		}

		return noticeMsg{kind: noticeInfo, text: "Saved " + path}
	}
}

func notifyCmd(kind noticeKind, text string) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{kind: kind, text: text}
	}
}

func (m appModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return renderMarkdown(usageMarkdown)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(),
		m.statusView(),
		m.notices.view(m.width),
	)
}
