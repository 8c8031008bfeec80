package convert_test

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/okaire/latexify/pkg/convert"
	"github.com/okaire/latexify/pkg/ollama"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "status error names endpoint and code",
			err:  &ollama.StatusError{Code: 500, Body: "boom"},
			want: "Could not reach Ollama at http://localhost:11434 (status 500). Is it running?",
		},
		{
			name: "wrapped status error",
			err:  fmt.Errorf("ollama: %w", &ollama.StatusError{Code: 404}),
			want: "Could not reach Ollama at http://localhost:11434 (status 404). Is it running?",
		},
		{
			name: "transport error names endpoint",
			err:  fmt.Errorf("ollama: do request: %w", &url.Error{Op: "Post", URL: "http://localhost:11434/api/generate", Err: errors.New("connection refused")}),
			want: "Could not reach Ollama at http://localhost:11434. Is it running?",
		},
		{
			name: "bad chunk blames the model",
			err:  fmt.Errorf("%w: unexpected token", ollama.ErrBadChunk),
			want: "Invalid response from the model. It may be struggling, try again.",
		},
		{
			name: "stream error blames the connection",
			err:  fmt.Errorf("%w: unexpected EOF", ollama.ErrStream),
			want: "Connection to Ollama was interrupted.",
		},
		{
			name: "anything else is wrapped generically",
			err:  errors.New("out of cheese"),
			want: "Conversion failed: out of cheese",
		},
		{
			name: "nil falls through to the fixed message",
			err:  nil,
			want: "Conversion failed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.Classify(tt.err))
		})
	}
}
