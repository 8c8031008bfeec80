package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
)

const usageMarkdown = `# latexify

Convert natural language to LaTeX equations with a local Ollama model.

## Scratchpad

` + "`latexify [file]`" + ` opens the scratchpad, optionally backed by a file.

- **ctrl+space** — start/stop a line selection at the cursor
- **ctrl+l** — convert the selection to LaTeX (replaces it in place)
- **ctrl+s** — save the file
- **ctrl+g** — toggle this help
- **esc** — cancel the selection
- **ctrl+c** — quit

## Commands

- ` + "`latexify convert [text]`" + ` — convert the argument or stdin, result on stdout
- ` + "`latexify settings`" + ` — edit model, prompt template, and keep-alive
- ` + "`latexify init`" + ` — create ~/.latexify with a default config

Ollama must be running locally on port 11434.
`

// mdRenderer renders markdown to terminal-formatted output.
var mdRenderer *glamour.TermRenderer

func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}

	mdRenderer = r
}

// renderMarkdown converts markdown to terminal-formatted output. Falls back
// to plain text if the renderer is unavailable.
func renderMarkdown(text string) string {
	if mdRenderer == nil {
		return text
	}

	out, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

func printUsage() {
	initMarkdownRenderer(100)
	fmt.Println(renderMarkdown(usageMarkdown))
}

// loadDotEnv loads the .env file at path. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// truncate shortens s to at most width terminal cells, replacing newlines
// so the text stays on a single line.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "...")
}
