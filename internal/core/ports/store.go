package ports

import (
	"context"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
)

// RadioStore persists per-guild radio configuration and play history.
// Persistence failures are advisory: in-memory state stays authoritative for
// the running process.
type RadioStore interface {
	// LoadConfigs returns the enabled flag for every guild with a stored entry.
	// Absence of an entry means disabled.
	LoadConfigs(ctx context.Context) (map[string]bool, error)
	SaveConfig(ctx context.Context, guildID string, enabled bool) error

	RecordPlay(ctx context.Context, rec domain.PlayRecord) error
	RecentPlays(ctx context.Context, guildID string, limit int) ([]domain.PlayRecord, error)
}
