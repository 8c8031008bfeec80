// Package convert implements the convert-to-LaTeX command: it takes the
// host editor's current selection, runs it through the Ollama client, and
// replaces the selection with the returned equation.
//
// The command depends only on two narrow capabilities, Editor and Notifier,
// so hosts (the TUI, the pipe mode, tests) can provide their own surfaces.
package convert

import (
	"context"
	"strings"

	"github.com/okaire/latexify/pkg/ollama"
	"github.com/okaire/latexify/pkg/settings"
)

// Editor is the host editor surface the command operates on.
type Editor interface {
	// Selection returns the currently selected text.
	Selection() string
	// ReplaceSelection replaces the current selection with text.
	ReplaceSelection(text string) error
}

// Notifier shows user-facing notices.
type Notifier interface {
	// Notify shows a short-lived notice.
	Notify(text string)
	// Alert shows a longer-lived notice, used for errors.
	Alert(text string)
	// Progress shows a persistent notice; the returned func hides it.
	Progress(text string) func()
}

// Converter wires the Ollama client and the current settings to a notifier.
type Converter struct {
	client   *ollama.Client
	cfg      settings.Settings
	notifier Notifier
}

// New creates a Converter.
func New(client *ollama.Client, cfg settings.Settings, n Notifier) *Converter {
	return &Converter{client: client, cfg: cfg, notifier: n}
}

// Run converts the editor's current selection in place. A blank selection
// aborts with a transient notice and no network call. On failure the
// document is left unmodified and the classified error is shown; the
// progress notice is hidden on every exit path.
func (c *Converter) Run(ctx context.Context, ed Editor) error {
	sel := ed.Selection()
	if strings.TrimSpace(sel) == "" {
		c.notifier.Notify("No text selected.")

		return nil
	}

	hide := c.notifier.Progress("Converting to LaTeX...")
	defer hide()

	out, err := c.client.ConvertLaTeX(ctx, sel, ollama.Options{
		Model:          c.cfg.OllamaModel,
		PromptTemplate: c.cfg.LLMPrompt,
		KeepAlive:      c.cfg.KeepAlive,
	})
	if err != nil {
		c.Report(err)

		return err
	}

	if err := ed.ReplaceSelection(out); err != nil {
		c.Report(err)

		return err
	}

	c.notifier.Notify("Converted to LaTeX.")

	return nil
}

// Report classifies err, shows the resulting message as an alert, and
// returns the message.
func (c *Converter) Report(err error) string {
	msg := Classify(err)
	c.notifier.Alert(msg)

	return msg
}
