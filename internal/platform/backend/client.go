// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package backend provides the shared HTTP client for the fee-management API.

Every authenticated call in the portal goes through one [Client] instance:
the session layer writes the bearer token once after login, and all other
components inherit it without touching headers themselves.

Architecture:

  - Transport: JSON in, JSON out, REST semantics owned by the backend.
  - Identity: A single process-wide Authorization header, synchronized
    exclusively by the session manager.
  - Failures: Every failed request is surfaced as an [apperr.AppError] whose
    message follows the server-payload > transport fallback chain and is safe
    to render inline.
*/
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/feeflow/portal/internal/platform/apperr"
)

// Client is the process-wide fee-backend HTTP client.
//
// # Concurrency
//
// The bearer header is written only by the session manager but may be read by
// any goroutine issuing a request, so access is guarded.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.RWMutex
	bearer string
}

// New constructs a [Client] rooted at baseURL (e.g. "http://localhost:8080/api").
//
// The underlying [http.Client] carries no request timeout: a stalled backend
// keeps the one in-flight flow step pending rather than failing it early.
func New(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// # Authorization Header

// SetAuthToken installs token as the default bearer credential for every
// subsequent request.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearer = token
}

// ClearAuthToken removes the default bearer credential.
func (c *Client) ClearAuthToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearer = ""
}

// AuthToken returns the currently installed bearer token, empty when logged out.
func (c *Client) AuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// # Requests

// PostJSON sends body as JSON to path and decodes the response into out.
// Pass a nil out to discard the response body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// GetJSON fetches path and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// errorPayload is the error body shape the backend is expected to return on
// non-2xx responses. Absence of both fields falls back to a transport-level
// message.
type errorPayload struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperr.Backend("Unable to encode request.", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperr.Backend(err.Error(), err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if bearer := c.AuthToken(); bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		// Transport failure: no server payload exists, the transport message
		// is the best displayable information available.
		return apperr.Backend(err.Error(), err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return c.statusError(method, path, response)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return apperr.Backend(
			fmt.Sprintf("Unexpected response from server (%s %s).", method, path), err)
	}
	return nil
}

// statusError extracts the displayable message for a non-2xx response:
// payload "message", else payload "error", else a transport-level message.
func (c *Client) statusError(method, path string, response *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, 1<<20))

	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Err
	}
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d.", response.StatusCode)
	}

	c.logger.Warn("backend_request_rejected",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
	)
	return apperr.Backend(message, nil)
}
