// Package api provides the HTTP client shared by every service that talks to
// the Profolio backend: request building, bearer credential injection, and
// decoding of the server's JSON error envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "profolio-cli/1.0"

// TokenSource supplies the current bearer token. An empty string means the
// request goes out uncredentialed.
type TokenSource interface {
	Token() string
}

// Options configures the client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for API access.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client issues JSON requests against a single API base path. The zero value
// is not usable; construct with New.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	userAgent      string
	tokens         TokenSource
	onUnauthorized func()
}

// New creates a client rooted at baseURL (e.g. "https://host/api").
func New(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
	}
}

// SetTokenSource injects the credential supplier. Only the session store may
// own the token; the client never caches it.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// SetUnauthorizedHandler registers the hook invoked whenever a credentialed
// request comes back 401. The session store uses it to tear itself down.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

// NoAuth returns a view of the client that never attaches credentials and
// never triggers the unauthorized handler. Public share requests use it.
func (c *Client) NoAuth() *Client {
	clone := *c
	clone.tokens = nil
	clone.onUnauthorized = nil
	return &clone
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the JSON response into out (when non-nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with in as the JSON body and decodes into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

// Put issues a PUT with in as the JSON body and decodes into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE, ignoring any response body beyond error decoding.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// Stream issues a GET and returns the raw response body for binary payloads
// such as PDF exports. The caller must close the reader.
func (c *Client) Stream(ctx context.Context, path string) (io.ReadCloser, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		return nil, c.errorFromResponse(resp)
	}
	return resp.Body, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{URL: c.baseURL + path, Message: "failed to read response body", Cause: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &RequestError{URL: c.baseURL + path, Message: "response is not valid JSON", Cause: err}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return nil, &RequestError{URL: url, Message: "failed to encode request body", Cause: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &RequestError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: url, Message: "HTTP request failed", Cause: err}
	}
	return resp, nil
}

// errorFromResponse converts a non-2xx response into an APIError, extracting
// the server's {"detail": ...} message when present. A 401 on a credentialed
// request additionally fires the session teardown hook.
func (c *Client) errorFromResponse(resp *http.Response) error {
	detail := ""
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
		var envelope struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			detail = envelope.Detail
		}
	}
	if detail == "" {
		detail = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}

	// Teardown fires only when a credential was actually presented; a 401 on
	// a login attempt is a rejection, not an expired session.
	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil && c.tokens.Token() != "" && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
