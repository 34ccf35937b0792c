package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	shared_errors "github.com/itchan-dev/punchcards/shared/errors"
)

const defaultTimeout = 10 * time.Second

// APIClient struct handles all communication with the punchcards API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// do is the single helper for making API requests. A non-nil body is sent
// as JSON.
func (c *APIClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// statusError turns an unexpected response into an error carrying its
// status code. The server only sends the status text, so that is all we
// can report.
func statusError(resp *http.Response, action string) error {
	return &shared_errors.ErrorWithStatusCode{
		Message:    fmt.Sprintf("%s: backend returned %s", action, resp.Status),
		StatusCode: resp.StatusCode,
	}
}

func decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}
	return nil
}
