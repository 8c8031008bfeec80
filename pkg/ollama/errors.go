package ollama

import (
	"errors"
	"fmt"
)

// ErrStream marks a response body that could not be read to completion.
var ErrStream = errors.New("ollama: read stream")

// ErrBadChunk marks a stream line that could not be decoded as JSON. A single
// bad line fails the whole call; accumulated partial text is discarded.
var ErrBadChunk = errors.New("ollama: decode chunk")

// StatusError reports a non-2xx response from the server.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ollama: unexpected status %d", e.Code)
	}

	return fmt.Sprintf("ollama: unexpected status %d: %s", e.Code, e.Body)
}
