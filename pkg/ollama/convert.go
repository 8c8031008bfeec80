package ollama

import (
	"context"
	"strings"

	"github.com/okaire/latexify/pkg/prompt"
)

// Options configure a single conversion call.
type Options struct {
	Model          string
	PromptTemplate string // Template containing the {input} placeholder.
	KeepAlive      string
}

// ConvertLaTeX substitutes input into the prompt template and returns the
// model's accumulated output, trimmed of surrounding whitespace.
func (c *Client) ConvertLaTeX(ctx context.Context, input string, opts Options) (string, error) {
	out, err := c.Generate(ctx, GenerateRequest{
		Model:     opts.Model,
		Prompt:    prompt.Render(opts.PromptTemplate, input),
		Stream:    true,
		KeepAlive: opts.KeepAlive,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}
