// Package client talks to the LeetTrack REST backend. Every call
// attaches the bearer token from the session store; a 401 response
// fires the configured unauthorized callback once and then fails the
// operation with ErrUnauthorized.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// TokenSource supplies the current bearer token, if any.
// *session.Store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the shared HTTP core behind the per-resource clients.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// New constructs a client for the API at baseURL, e.g.
// "http://localhost:4000".
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		tokens:     tokens,
	}
}

// OnUnauthorized installs the callback invoked when the backend
// reports 401, conventionally a redirect to the sign-in entry point.
// Tests supply a spy here.
func (c *Client) OnUnauthorized(fn func()) *Client {
	c.onUnauthorized = fn
	return c
}

// HTTPClient swaps the underlying http.Client.
func (c *Client) HTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Problems returns the problems resource client.
func (c *Client) Problems() *ProblemsClient {
	return &ProblemsClient{c: c}
}

// CheatSheets returns the cheatsheets resource client.
func (c *Client) CheatSheets() *CheatSheetsClient {
	return &CheatSheetsClient{c: c}
}

// do performs one JSON round trip. A nil out discards the response
// body. Status mapping: 401 -> ErrUnauthorized (after the callback),
// 404 -> ErrNotFound, other non-2xx -> *APIError with the body's error
// message or the status text, transport failure -> wrapped plain error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodGet {
		// Callers must always see latest server state.
		req.Header.Set("Cache-Control", "no-store")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return c.apiError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	message := ""
	code := ""
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
		code = body.Code
	} else {
		message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Code: code, Message: message}
}
