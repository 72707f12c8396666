package proxy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Cap on relayed response bodies.
const maxRelayBody = 1 << 20

// Client relays generation requests to the backend service.
type Client struct {
	targetURL  string
	httpClient *http.Client
}

// NewClient creates a relay client for the given generation endpoint.
func NewClient(targetURL string, timeout time.Duration) *Client {
	return &Client{
		targetURL: targetURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward posts the request body verbatim to the target and returns the
// backend's status code and payload. Transport and read failures come back
// as errors; the caller decides how to surface them.
func (c *Client) Forward(ctx context.Context, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.targetURL, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to reach generation backend: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	return resp.StatusCode, payload, nil
}
