// Package registry is a client for the network-inventory registry's REST
// API. It exposes read (list/filter) operations for DCIM and IPAM entities
// plus idempotent "add" operations that resolve a graph of prerequisite
// entities — creating any that are missing — before creating their target.
//
// The client owns no state beyond its base URL and token; every operation
// is a synchronous sequence of HTTP calls against the registry.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/netreg-io/netreg/pkg/util"
)

// Client talks to one registry instance. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string // normalized: no trailing slash
	token   string // empty means unauthenticated
	http    *http.Client
	log     *logrus.Entry
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP transport. Timeout, proxy and
// retry policy all belong to the supplied client; the registry client never
// retries on its own.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the registry rooted at baseURL (e.g.
// "https://netbox.example.net/api"). token may be empty for registries that
// allow anonymous reads.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, util.NewValidationError("registry URL is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     util.WithField("component", "registry"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized registry root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// headers returns the header set for every request: JSON content
// negotiation plus token auth only when a token is configured.
func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	if c.token != "" {
		h.Set("Authorization", "Token "+c.token)
	}
	return h
}

// requestURL joins the registry root with a resource path and encodes the
// filter query. Values are percent-encoded by url.Values, so caller-supplied
// names may contain spaces, slashes or '+' safely.
func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// StatusError reports a non-2xx registry response. The body is retained
// because the registry returns field-level validation messages in it.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("registry returned %d for %s %s", e.StatusCode, e.Method, e.Path)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// do issues one request and decodes the JSON response into out (skipped
// when out is nil). Transport errors and non-2xx statuses are returned
// unmodified in kind; nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), body)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header = c.headers()

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("registry request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// getList fetches one collection page and returns its results array.
// Only the first page is read; the envelope's next link is ignored.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var envelope struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []T     `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}
