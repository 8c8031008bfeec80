// Package ollama is a minimal client for the generate API of a locally
// running Ollama server. It streams the newline-delimited JSON response body
// and accumulates the generated text.
package ollama

import (
	"context"
	"io"
	"net/http"
)

// DefaultBaseURL is the local Ollama endpoint. The conversion flow always
// talks to this address; the field on Client exists so tests can point at a
// test server.
const DefaultBaseURL = "http://localhost:11434"

const generatePath = "/api/generate"

// Client holds shared state for talking to an Ollama server.
type Client struct {
	BaseURL string            // API base URL (no trailing slash).
	Client  *http.Client      // HTTP client; falls back to http.DefaultClient.
	Headers map[string]string // Extra headers applied to every request.
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

// httpClient returns the configured client or http.DefaultClient.
func (c *Client) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}

	return http.DefaultClient
}

// NewRequest builds an *http.Request with the base URL and custom headers
// already applied.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}
