package ytsearch

import (
	"fmt"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
)

// Tracks longer than this are almost always mixes or full concerts, which the
// radio never wants even when the title looks clean.
const maxTrackSeconds = 15 * 60

func (c *Client) mapItemsToDomain(items []searchItem) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(items))
	for _, it := range items {
		if it.Type != "" && it.Type != "video" {
			continue
		}
		if it.VideoID == "" || it.Title == "" || it.LiveNow {
			continue
		}
		if it.LengthSeconds > maxTrackSeconds {
			continue
		}
		out = append(out, domain.Candidate{
			Title:           it.Title,
			URL:             c.watchURL(it.VideoID),
			DurationSeconds: it.LengthSeconds,
			Uploader:        it.Author,
		})
	}
	return out
}

func (c *Client) watchURL(videoID string) string {
	return fmt.Sprintf("%s/watch?v=%s", c.watchBase, videoID)
}
