package convert

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/okaire/latexify/pkg/ollama"
)

// Classify maps a conversion failure to a user-facing message. The first
// matching class wins: server/transport failures point at the expected local
// endpoint, a malformed chunk blames the model, a dropped stream blames the
// connection, and anything else is wrapped generically.
func Classify(err error) string {
	var (
		statusErr *ollama.StatusError
		urlErr    *url.Error
	)

	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Could not reach Ollama at %s (status %d). Is it running?",
			ollama.DefaultBaseURL, statusErr.Code)
	case errors.As(err, &urlErr):
		return fmt.Sprintf("Could not reach Ollama at %s. Is it running?", ollama.DefaultBaseURL)
	case errors.Is(err, ollama.ErrBadChunk):
		return "Invalid response from the model. It may be struggling, try again."
	case errors.Is(err, ollama.ErrStream):
		return "Connection to Ollama was interrupted."
	case err != nil:
		return "Conversion failed: " + err.Error()
	default:
		return "Conversion failed."
	}
}
