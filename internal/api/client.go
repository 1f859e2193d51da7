// Package api is the thin client for the grubline platform API. It owns
// request serialization, bearer-token attachment and the parsing boundary
// that turns loose response envelopes into typed values or typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lucsky/cuid"

	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/store"
)

// Client calls the remote platform API. It holds no session state itself:
// the bearer token is read fresh from the store on every call so a token
// refresh elsewhere is picked up immediately.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  store.Store
}

func NewClient(cfg *models.Config, tokens store.Store) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		tokens:  tokens,
	}
}

// NewClientWithHTTP is used by tests to point the client at an httptest server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, tokens store.Store) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient, tokens: tokens}
}

// statusEnvelope is the failure half of the API's response convention:
// a body carrying status=false is a failure even on a 2xx response.
type statusEnvelope struct {
	Status  *bool  `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// do performs one request and decodes the body into out (when non-nil).
// tokenKey names the local-storage key the bearer token is read from; an
// empty key or absent token sends the request unauthenticated.
func (c *Client) do(ctx context.Context, method, path, tokenKey string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", cuid.New())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tokenKey != "" && c.tokens != nil {
		if token, ok, _ := c.tokens.Get(tokenKey); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return networkError(err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var env statusEnvelope
		msg := genericNetworkError
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}

	var env statusEnvelope
	if json.Unmarshal(raw, &env) == nil && env.Status != nil && !*env.Status {
		msg := env.Message
		if msg == "" {
			msg = genericNetworkError
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: %w: %v", method, path, ErrInvalidShape, err)
		}
	}
	return nil
}
