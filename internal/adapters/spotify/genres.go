package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ArtistGenres looks up the catalog genres for an artist name. The first
// search result whose name matches case-insensitively wins; no match means no
// genres, not an error.
func (c *Client) ArtistGenres(ctx context.Context, artist string) ([]string, error) {
	var body artistSearchResponse
	if err := c.getJSON(ctx, "artist", fmt.Sprintf("artist:%s", artist), &body); err != nil {
		return nil, err
	}

	for _, item := range body.Artists.Items {
		if strings.EqualFold(item.Name, artist) {
			return item.Genres, nil
		}
	}
	return nil, nil
}

// PreviewURL returns a short audio preview URL for a track, or empty when the
// catalog has none.
func (c *Client) PreviewURL(ctx context.Context, artist string, title string) (string, error) {
	var body trackSearchResponse
	if err := c.getJSON(ctx, "track", fmt.Sprintf("track:%s artist:%s", title, artist), &body); err != nil {
		return "", err
	}

	for _, item := range body.Tracks.Items {
		if item.PreviewURL != "" {
			return item.PreviewURL, nil
		}
	}
	return "", nil
}

func (c *Client) getJSON(ctx context.Context, kind string, query string, out any) error {
	searchURL, err := url.Parse(fmt.Sprintf("%s/search", c.baseURL))
	if err != nil {
		return fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", kind)
	q.Set("limit", "5")
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: decode: %w", err)
	}
	return nil
}
