package ytsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
)

// Search runs one video search and maps the results to candidates. Failures
// come back as *ports.ProviderError so the recommender can skip the strategy
// and move on.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	searchURL, err := url.Parse(fmt.Sprintf("%s/api/v1/search", c.baseURL))
	if err != nil {
		return nil, &ports.ProviderError{Query: query, Err: fmt.Errorf("ytsearch adapter: invalid search url: %w", err)}
	}

	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "video")
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, &ports.ProviderError{Query: query, Err: fmt.Errorf("ytsearch adapter: %w", err)}
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, &ports.ProviderError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ports.ProviderError{Query: query, Err: fmt.Errorf("ytsearch adapter: search status %d", resp.StatusCode)}
	}

	var items []searchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &ports.ProviderError{Query: query, Err: fmt.Errorf("ytsearch adapter: decode: %w", err)}
	}

	candidates := c.mapItemsToDomain(items)
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// ResolvePlayableURL turns a free-form reference into a playable watch URL.
// Anything that already looks like a URL passes through untouched; everything
// else is treated as a search query whose best result wins.
func (c *Client) ResolvePlayableURL(ctx context.Context, ref string) (string, error) {
	if isURL(ref) {
		return ref, nil
	}

	results, err := c.Search(ctx, ref, 1)
	if err != nil {
		return "", fmt.Errorf("ytsearch adapter: resolve %q: %w", ref, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("ytsearch adapter: resolve %q: %w", ref, domain.ErrNotFound)
	}
	return results[0].URL, nil
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
