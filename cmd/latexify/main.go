package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okaire/latexify/pkg/latexdir"
	"github.com/okaire/latexify/pkg/ollama"
	"github.com/okaire/latexify/pkg/settings"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: latexify init [flags]\n\nInitialize the latexify directory with a default config.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			dir := initCmd.String("dir", latexdir.DefaultRoot(), "path to the latexify directory")
			_ = initCmd.Parse(os.Args[2:])

			if err := runInit(*dir); err != nil {
				fail(err)
			}

			return
		case "settings":
			setCmd := flag.NewFlagSet("settings", flag.ExitOnError)
			setCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: latexify settings [flags]\n\nEdit the model, prompt template, and keep-alive interactively.\n\nFlags:\n")
				setCmd.PrintDefaults()
			}
			cfgPath := setCmd.String("config", "", "path to settings file (default: ~/.latexify/config.yaml)")
			_ = setCmd.Parse(os.Args[2:])

			if err := runSettingsForm(*cfgPath); err != nil {
				fail(err)
			}

			return
		case "convert":
			convCmd := flag.NewFlagSet("convert", flag.ExitOnError)
			convCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: latexify convert [flags] [text]\n\nConvert the argument (or stdin) to a LaTeX equation on stdout.\n\nFlags:\n")
				convCmd.PrintDefaults()
			}
			cfgPath := convCmd.String("config", "", "path to settings file (default: ~/.latexify/config.yaml)")
			showDiff := convCmd.Bool("diff", false, "print a unified diff between input and result")
			verbose := convCmd.Bool("verbose", false, "print progress notices")
			_ = convCmd.Parse(os.Args[2:])

			if runPipe(*cfgPath, *showDiff, *verbose, convCmd.Args()) != nil {
				// The failure has already been shown through the notifier.
				os.Exit(1)
			}

			return
		case "help", "-h", "--help":
			printUsage()

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: latexify [flags] [file]\n       latexify <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init      Initialize the latexify directory with a default config\n  settings  Edit settings interactively\n  convert   Convert the argument (or stdin) to LaTeX on stdout\n  help      Show usage\n")
	}

	configPath := flag.String("config", "", "path to settings file (default: ~/.latexify/config.yaml)")
	envFile := flag.String("env", "", "path to .env file (default: ~/.latexify/.env; ignored if missing)")
	flag.Parse()

	if err := run(*configPath, *envFile, flag.Arg(0)); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// resolveStore binds the settings store to the explicit path or the default
// location under ~/.latexify.
func resolveStore(configPath string) *settings.Store {
	if configPath == "" {
		configPath = latexdir.New(latexdir.DefaultRoot()).ConfigPath()
	}

	return settings.NewStore(configPath)
}

func runInit(dirPath string) error {
	d := latexdir.New(dirPath)
	if err := latexdir.Bootstrap(d); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", d.Root())

	return nil
}

func run(configPath, envFile, filePath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if envFile == "" {
		envFile = latexdir.New(latexdir.DefaultRoot()).EnvPath()
	}

	if err := loadDotEnv(envFile); err != nil {
		return err
	}

	cfg, err := resolveStore(configPath).Load()
	if err != nil {
		return err
	}

	model, err := newAppModel(ctx, cfg, ollama.New(ollama.DefaultBaseURL), filePath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Send the program reference so conversion goroutines can push notices
	// and replacements back into the update loop.
	go func() {
		p.Send(programReadyMsg{program: p})
	}()

	_, err = p.Run()

	return err
}
