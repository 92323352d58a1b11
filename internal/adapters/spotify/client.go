// Package spotify adapts the Spotify Web API to the core GenreProvider and
// TrackPreview ports. Genre lookups are best-effort enrichment: every error
// path degrades to "no extra genres" upstream.
package spotify

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/ThermaloS/AetherBot/internal/core/ports"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// Client is an HTTP client for the Spotify Web API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time interface assertions
var (
	_ ports.GenreProvider = (*Client)(nil)
	_ ports.TrackPreview  = (*Client)(nil)
)

// NewClient constructs a client using the client-credentials flow. The
// returned client refreshes its token transparently.
func NewClient(ctx context.Context, clientID string, clientSecret string) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     "https://accounts.spotify.com/api/token",
	}
	return &Client{
		httpClient: conf.Client(ctx),
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithHTTP constructs a client around an explicit HTTP client and
// base URL. Used by tests and by alternate auth setups.
func NewClientWithHTTP(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
