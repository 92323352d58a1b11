package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
	"github.com/ThermaloS/AetherBot/internal/core/title"
)

// RadioConfig tunes per-guild radio behavior.
type RadioConfig struct {
	// SimilarityThreshold above which a candidate counts as recently played.
	SimilarityThreshold float64
	// MaxURLHistory bounds the exact-match URL window per guild.
	MaxURLHistory int
	// MaxTitleHistory bounds the similarity-check title window per guild.
	MaxTitleHistory int
	// RecommendTimeout bounds one whole recommendation cycle.
	RecommendTimeout time.Duration
}

// DefaultRadioConfig matches the production defaults.
func DefaultRadioConfig() RadioConfig {
	return RadioConfig{
		SimilarityThreshold: 0.6,
		MaxURLHistory:       10,
		MaxTitleHistory:     15,
		RecommendTimeout:    15 * time.Second,
	}
}

// guildState is the radio state for one guild. Only Radio mutates it, under
// Radio.mu: completion callbacks may arrive from concurrent HTTP handlers and
// the history structures are not safe for unsynchronized read-modify-write.
type guildState struct {
	enabled bool
	history *domain.History
}

// Radio owns all per-guild radio state and coordinates queue extension. It is
// the only component that mutates RadioState; collaborators only see method
// calls.
type Radio struct {
	mu     sync.Mutex
	guilds map[string]*guildState

	recommender *Recommender
	titles      *title.Processor
	store       ports.RadioStore
	log         zerolog.Logger
	cfg         RadioConfig

	// onPick receives accepted picks for post-processing (history
	// persistence, enrichment). Optional.
	onPick func(guildID string, pick domain.TrackRef)
}

// NewRadio constructs the orchestrator and loads persisted enabled flags.
// Store load failures leave every guild disabled and are logged, not fatal.
func NewRadio(
	ctx context.Context,
	recommender *Recommender,
	titles *title.Processor,
	store ports.RadioStore,
	logger zerolog.Logger,
	cfg RadioConfig,
) *Radio {
	r := &Radio{
		guilds:      make(map[string]*guildState),
		recommender: recommender,
		titles:      titles,
		store:       store,
		log:         logger,
		cfg:         cfg,
	}

	if store != nil {
		configs, err := store.LoadConfigs(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("loading radio configs failed, starting disabled")
		} else {
			for guildID, enabled := range configs {
				r.guilds[guildID] = &guildState{
					enabled: enabled,
					history: domain.NewHistory(cfg.MaxURLHistory, cfg.MaxTitleHistory),
				}
			}
		}
	}

	return r
}

// SetOnPick registers a hook invoked for every accepted radio pick.
func (r *Radio) SetOnPick(fn func(guildID string, pick domain.TrackRef)) {
	r.onPick = fn
}

// IsEnabled reports the radio flag for a guild; unknown guilds are disabled.
func (r *Radio) IsEnabled(guildID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.guilds[guildID]; ok {
		return st.enabled
	}
	return false
}

// Toggle flips the radio flag and persists it, returning the new state.
// Persistence errors are logged; the in-memory flag is authoritative for the
// running process.
func (r *Radio) Toggle(ctx context.Context, guildID string) bool {
	r.mu.Lock()
	st := r.ensureGuildLocked(guildID)
	st.enabled = !st.enabled
	enabled := st.enabled
	r.mu.Unlock()

	r.persist(ctx, guildID, enabled)
	return enabled
}

// SetEnabled forces the radio flag to a specific state and persists it.
func (r *Radio) SetEnabled(ctx context.Context, guildID string, enabled bool) {
	r.mu.Lock()
	st := r.ensureGuildLocked(guildID)
	st.enabled = enabled
	r.mu.Unlock()

	r.persist(ctx, guildID, enabled)
}

// RecentTitles returns up to limit recently played titles, newest last.
func (r *Radio) RecentTitles(guildID string, limit int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.guilds[guildID]
	if !ok {
		return nil
	}
	titles := st.history.Titles()
	if limit > 0 && len(titles) > limit {
		titles = titles[len(titles)-limit:]
	}
	return titles
}

// RecordPlayed adds a started track to the guild's recently-played history.
func (r *Radio) RecordPlayed(guildID string, track domain.TrackRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureGuildLocked(guildID).history.Add(track.URL, track.Title)
}

// IsRecentlyPlayed reports whether a candidate title is already covered by
// the guild's history: exact title match, similarity above the threshold, or
// the same parsed song name under a different artist.
func (r *Radio) IsRecentlyPlayed(guildID string, candidateTitle string) bool {
	r.mu.Lock()
	st, ok := r.guilds[guildID]
	var entries []domain.TrackRef
	if ok {
		entries = st.history.Entries()
	}
	r.mu.Unlock()
	if len(entries) == 0 {
		return false
	}

	candInfo := r.titles.Parse(candidateTitle)
	for _, entry := range entries {
		if entry.Title == candidateTitle {
			return true
		}
		if title.Similarity(candidateTitle, entry.Title) > r.cfg.SimilarityThreshold {
			return true
		}
		// Same song name under another artist is still a repeat for the
		// listener (covers, reuploads).
		prevInfo := r.titles.Parse(entry.Title)
		if candInfo.SongTitle != "" && prevInfo.SongTitle != "" &&
			strings.EqualFold(candInfo.SongTitle, prevInfo.SongTitle) {
			return true
		}
	}
	return false
}

// OnQueueExhausted handles a queue-empty event for a guild: when radio mode
// is on and a last-played reference exists, it records the reference into
// history, asks the recommender for one similar track, and returns the pick.
// A nil pick is a valid outcome surfaced to the user as a status notice,
// never an error.
func (r *Radio) OnQueueExhausted(
	ctx context.Context,
	guildID string,
	lastPlayed domain.TrackRef,
	notify ports.Notifier,
) *domain.TrackRef {
	if !r.IsEnabled(guildID) {
		return nil
	}

	refTitle := lastPlayed.Title
	if refTitle == "" {
		// Direct playback URLs carry no usable title; fall back to the most
		// recent cached one.
		if recent := r.RecentTitles(guildID, 1); len(recent) > 0 {
			refTitle = recent[0]
		}
	}
	if refTitle == "" {
		r.log.Debug().Str("guild", guildID).Msg("queue exhausted with no last-played reference")
		return nil
	}

	// The completion path usually records the track already; only record here
	// when the reference came from the title fallback.
	if recent := r.RecentTitles(guildID, 1); len(recent) == 0 || recent[0] != refTitle {
		r.RecordPlayed(guildID, domain.TrackRef{URL: lastPlayed.URL, Title: refTitle})
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.RecommendTimeout)
	defer cancel()

	pick, err := r.recommender.FindSimilarSong(ctx, refTitle, func(candidateTitle string) bool {
		return r.IsRecentlyPlayed(guildID, candidateTitle)
	})
	if err != nil {
		// Timeout or cancellation degrades to "nothing found".
		r.log.Warn().Err(err).Str("guild", guildID).Msg("recommendation cycle aborted")
		pick = nil
	}

	if pick == nil {
		if notify != nil {
			notify.Notify(ctx, guildID, "Couldn't find a similar song to keep the radio going.")
		}
		return nil
	}

	r.RecordPlayed(guildID, *pick)
	if r.onPick != nil {
		r.onPick(guildID, *pick)
	}
	return pick
}

// ensureGuildLocked returns the guild state, creating it if needed. Caller
// holds r.mu.
func (r *Radio) ensureGuildLocked(guildID string) *guildState {
	st, ok := r.guilds[guildID]
	if !ok {
		st = &guildState{
			history: domain.NewHistory(r.cfg.MaxURLHistory, r.cfg.MaxTitleHistory),
		}
		r.guilds[guildID] = st
	}
	return st
}

func (r *Radio) persist(ctx context.Context, guildID string, enabled bool) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveConfig(ctx, guildID, enabled); err != nil {
		r.log.Error().Err(err).Str("guild", guildID).Msg("persisting radio config failed")
	}
}
