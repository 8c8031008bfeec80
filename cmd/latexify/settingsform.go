package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// runSettingsForm edits the three settings fields interactively and
// persists the whole object on submit. No field is validated; a prompt
// template without {input} is accepted and passed through untouched at
// conversion time.
func runSettingsForm(configPath string) error {
	st := resolveStore(configPath)

	cfg, err := st.Load()
	if err != nil {
		return err
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Ollama model").
			Description("Name of the local model, e.g. llama2.").
			Value(&cfg.OllamaModel),
		huh.NewText().
			Title("Prompt template").
			Description("Use {input} where the selected text should be substituted.").
			Value(&cfg.LLMPrompt),
		huh.NewInput().
			Title("Keep alive").
			Description("How long the model stays loaded, e.g. 5m, or -1 to keep it loaded.").
			Value(&cfg.KeepAlive),
	))

	if err := form.Run(); err != nil {
		return err
	}

	if err := st.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("Settings saved to %s\n", st.Path())

	return nil
}
