// Package ytsearch adapts an Invidious-compatible video search API to the
// core SearchProvider port.
package ytsearch

import (
	"net/http"
	"strings"
	"time"

	"github.com/ThermaloS/AetherBot/internal/core/ports"
)

// Client is an HTTP client for an Invidious-compatible search instance.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	watchBase   string
	maxRetries  int
	baseBackoff time.Duration
}

// compile-time interface assertion
var _ ports.SearchProvider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithRetry overrides the retry budget and base backoff.
func WithRetry(maxRetries int, baseBackoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseBackoff = baseBackoff
	}
}

// WithWatchBase overrides the base URL used to build playable watch URLs.
// Defaults to the public YouTube frontend.
func WithWatchBase(base string) Option {
	return func(c *Client) {
		c.watchBase = strings.TrimRight(base, "/")
	}
}

// NewClient constructs a search client against baseURL.
func NewClient(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		watchBase:  "https://www.youtube.com",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
