// Package apiclient talks to the Agrive REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// ErrUnavailable wraps transport failures: the API could not be reached or
// did not answer in time.
var ErrUnavailable = errors.New("agrive api unavailable")

// maxErrorBody bounds how much of an error response is kept as a message.
const maxErrorBody = 4 << 10

// APIError is a non-2xx response from the Agrive API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("agrive api returned %d: %s", e.StatusCode, e.Message)
}

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	Token() string
}

// Options configures a Client.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client is a thin typed wrapper over the Agrive endpoints.
type Client struct {
	baseURL  string
	http     *http.Client
	pageSize int
	tokens   TokenSource
	logger   zerolog.Logger
}

// New creates a new API client.
func New(opts Options, tokens TokenSource, logger zerolog.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 10000
	}
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     httpClient,
		pageSize: pageSize,
		tokens:   tokens,
		logger:   logger.With().Str("component", "agrive-client").Logger(),
	}
}

// BaseURL returns the API root, which also serves uploaded images.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type authMode int

const (
	// authNone never sends a token.
	authNone authMode = iota
	// authOptional sends the token when one exists.
	authOptional
	// authRequired fails with ErrNotAuthenticated when there is no token.
	authRequired
)

// request describes one upstream call.
type request struct {
	method      string
	path        string
	auth        authMode
	body        io.Reader
	contentType string
}

func jsonRequest(method, path string, auth authMode, payload any) (request, error) {
	req := request{method: method, path: path, auth: auth}
	if payload == nil {
		return req, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return req, fmt.Errorf("failed to encode request body: %w", err)
	}
	req.body = bytes.NewReader(data)
	req.contentType = "application/json"
	return req, nil
}

// do executes r and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	var token string
	if r.auth != authNone && c.tokens != nil {
		token = c.tokens.Token()
	}
	if r.auth == authRequired && token == "" {
		return nil, model.ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error().
			Err(err).
			Str("method", r.method).
			Str("path", r.path).
			Msg("agrive request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("agrive request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.Status),
		}
	}
	return body, nil
}

// doJSON sends payload as JSON and decodes a 2xx response into out.
// A nil out discards the body.
func (c *Client) doJSON(ctx context.Context, method, path string, auth authMode, payload, out any) error {
	r, err := jsonRequest(method, path, auth, payload)
	if err != nil {
		return err
	}
	body, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func decode(body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode agrive response: %w", err)
	}
	return nil
}

// errorMessage extracts message, then error, then the raw body.
func errorMessage(body []byte, status string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	raw := strings.TrimSpace(string(body))
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	if raw == "" {
		return status
	}
	return raw
}

// decodeList accepts a bare JSON array or an object that carries the array
// under one of keys.
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode agrive list: %w", err)
		}
		return list, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode agrive envelope: %w", err)
	}
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		list := []T{}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to decode agrive %q list: %w", key, err)
		}
		if list == nil {
			list = []T{}
		}
		return list, nil
	}
	return []T{}, nil
}

// getList fetches path and decodes a list from it.
func getList[T any](ctx context.Context, c *Client, path string, auth authMode, keys ...string) ([]T, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: path, auth: auth})
	if err != nil {
		return nil, err
	}
	return decodeList[T](body, keys...)
}
