// Package settings holds the persisted latexify configuration: the Ollama
// model to use, the prompt template, and the keep-alive duration.
package settings

import (
	"strings"

	"github.com/okaire/latexify/pkg/prompt"
)

// DefaultPrompt instructs the model to emit only a delimited equation. The
// {input} placeholder is replaced with the selected text at conversion time.
const DefaultPrompt = `Convert the following natural language description into a LaTeX equation: "{input}". Respond with only the equation, delimited by $$. Do not explain.`

// Settings is the full persisted configuration.
type Settings struct {
	OllamaModel string `yaml:"ollama_model"`
	LLMPrompt   string `yaml:"llm_prompt"`
	KeepAlive   string `yaml:"keep_alive"` // Duration string like "5m", or "-1" to keep the model loaded.
}

// Default returns the baseline configuration for a fresh install.
func Default() Settings {
	return Settings{
		OllamaModel: "llama2",
		LLMPrompt:   DefaultPrompt,
		KeepAlive:   "5m",
	}
}

// HasPlaceholder reports whether the prompt template contains the {input}
// placeholder. A template without it is still accepted; substitution then
// yields the literal template untouched.
func (s Settings) HasPlaceholder() bool {
	return strings.Contains(s.LLMPrompt, prompt.Placeholder)
}
