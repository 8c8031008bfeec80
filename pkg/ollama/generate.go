package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// GenerateRequest is the body for POST /api/generate.
type GenerateRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	Stream    bool   `json:"stream"`
	KeepAlive string `json:"keep_alive"`
}

// generateChunk is a single line of the streamed response body. The done
// flag is set on the final line; the stream end itself is signalled by EOF.
type generateChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate posts req to /api/generate and reads the streamed response body,
// concatenating the response field of every chunk in arrival order.
//
// Failure modes: a non-2xx status returns a *StatusError, an unreadable body
// wraps ErrStream, and a line that does not parse as JSON wraps ErrBadChunk.
// All of them abort the whole call with no partial result.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	hreq, err := c.NewRequest(ctx, http.MethodPost, generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}

	hreq.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(hreq)
	if err != nil {
		return "", fmt.Errorf("ollama: do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	// ReadBytes carries any trailing partial line over to the next network
	// read, so a JSON object split across reads is reassembled before it is
	// decoded.
	br := bufio.NewReader(resp.Body)

	var acc strings.Builder

	for {
		line, readErr := br.ReadBytes('\n')

		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var chunk generateChunk
			if err := json.Unmarshal(trimmed, &chunk); err != nil {
				return "", fmt.Errorf("%w: %v", ErrBadChunk, err)
			}

			acc.WriteString(chunk.Response)
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return "", fmt.Errorf("%w: %v", ErrStream, readErr)
		}
	}

	return acc.String(), nil
}
