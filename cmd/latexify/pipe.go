package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/okaire/latexify/pkg/convert"
	"github.com/okaire/latexify/pkg/ollama"
	"github.com/pmezard/go-difflib/difflib"
)

// runPipe converts the argument text (or stdin when no argument is given)
// and writes the result to stdout.
func runPipe(configPath string, showDiff, verbose bool, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := resolveStore(configPath).Load()
	if err != nil {
		ancli.Errf("%v\n", err)

		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			err = fmt.Errorf("read stdin: %w", err)
			ancli.Errf("%v\n", err)

			return err
		}

		text = string(data)
	}

	ed := &pipeEditor{selection: text, out: os.Stdout, showDiff: showDiff}
	n := cliNotifier{verbose: verbose}

	return convert.New(ollama.New(ollama.DefaultBaseURL), cfg, n).Run(ctx, ed)
}

// pipeEditor treats the whole piped input as the selection and stdout as
// the document.
type pipeEditor struct {
	selection string
	out       io.Writer
	showDiff  bool
}

func (e *pipeEditor) Selection() string { return e.selection }

func (e *pipeEditor) ReplaceSelection(text string) error {
	if e.showDiff {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(e.selection),
			B:        difflib.SplitLines(text),
			FromFile: "selection",
			ToFile:   "latex",
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("render diff: %w", err)
		}

		_, err = fmt.Fprint(e.out, diff)

		return err
	}

	_, err := fmt.Fprintln(e.out, text)

	return err
}

// cliNotifier maps notices to ancli output. Info and progress notices are
// shown only in verbose mode so they never pollute piped output.
type cliNotifier struct {
	verbose bool
}

func (n cliNotifier) Notify(text string) {
	if n.verbose {
		ancli.Okf("%v\n", text)
	}
}

func (n cliNotifier) Alert(text string) {
	ancli.Errf("%v\n", text)
}

func (n cliNotifier) Progress(text string) func() {
	if n.verbose {
		ancli.Noticef("%v\n", text)
	}

	return func() {}
}
