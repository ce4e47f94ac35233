// Package checkout is a client for the hosted payment-checkout provider.
// It opens checkout sessions carrying opaque metadata and retrieves their
// payment state after the customer returns.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a checkout provider client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateSession opens a new checkout session with the provider.
func (c *Client) CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions", c.baseURL)
	var session Session
	if err := c.do(ctx, http.MethodPost, url, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession retrieves a session by its provider id.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.baseURL, sessionID)
	var session Session
	if err := c.do(ctx, http.MethodGet, url, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to provider failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var provErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&provErr); decodeErr == nil && provErr.Message != "" {
			return fmt.Errorf("provider returned %s: %s", resp.Status, provErr.Message)
		}
		return fmt.Errorf("provider returned unexpected status: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}
