// Package services holds the radio core: the recommendation engine, the radio
// orchestrator with its per-guild state, and the playback queue driver.
package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ThermaloS/AetherBot/internal/core/analysis"
	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
	"github.com/ThermaloS/AetherBot/internal/core/title"
)

// RecommendConfig tunes one recommendation pass.
type RecommendConfig struct {
	// MaxSameArtist caps accepted same-artist picks inside one pass.
	MaxSameArtist int
	// CapSkipsFirstStrategy preserves the historical behavior of exempting
	// the first strategy from the same-artist cap. Set false to apply the
	// cap uniformly.
	CapSkipsFirstStrategy bool
	// PerStrategyLimit is the result count requested per strategy query.
	PerStrategyLimit int
	// FallbackLimit is the result count for the final generic query.
	FallbackLimit int
}

// DefaultRecommendConfig matches the production defaults.
func DefaultRecommendConfig() RecommendConfig {
	return RecommendConfig{
		MaxSameArtist:         3,
		CapSkipsFirstStrategy: true,
		PerStrategyLimit:      8,
		FallbackLimit:         10,
	}
}

// RecentChecker reports whether a title counts as recently played for the
// guild a recommendation is running for.
type RecentChecker func(candidateTitle string) bool

// Recommender finds one next track similar to a reference title. Single-shot:
// no state survives between calls beyond what the caller passes in.
type Recommender struct {
	search   ports.SearchProvider
	titles   *title.Processor
	analyzer *analysis.Analyzer
	genres   ports.GenreProvider
	rng      *rand.Rand
	log      zerolog.Logger
	cfg      RecommendConfig
}

// NewRecommender constructs a Recommender. genres may be nil; rng must be
// non-nil so tests can pin the shuffle order.
func NewRecommender(
	search ports.SearchProvider,
	titles *title.Processor,
	analyzer *analysis.Analyzer,
	genres ports.GenreProvider,
	rng *rand.Rand,
	logger zerolog.Logger,
	cfg RecommendConfig,
) *Recommender {
	return &Recommender{
		search:   search,
		titles:   titles,
		analyzer: analyzer,
		genres:   genres,
		rng:      rng,
		log:      logger,
		cfg:      cfg,
	}
}

// FindSimilarSong runs the full strategy pipeline for one reference title and
// returns at most one accepted candidate. A nil result with nil error means
// every strategy and the fallback were exhausted; the caller degrades
// gracefully. Provider failures on individual strategies are logged and
// skipped, never propagated.
func (r *Recommender) FindSimilarSong(ctx context.Context, refTitle string, isRecent RecentChecker) (*domain.TrackRef, error) {
	traceID := uuid.NewString()
	log := r.log.With().Str("trace", traceID).Logger()
	log.Info().Str("title", title.SafeTitle(refTitle)).Msg("finding similar song")

	// 1. Derive metadata from the reference title.
	info := r.titles.Parse(refTitle)
	genres := r.analyzer.EnhancedGenres(refTitle, info.Artist)
	genres = r.mergeProviderGenres(ctx, info.Artist, genres)
	log.Debug().
		Str("artist", info.Artist).
		Str("song", info.SongTitle).
		Strs("genres", genres).
		Strs("moods", info.Moods).
		Msg("reference metadata")

	// 2. Generate and shuffle the strategy list.
	strategies := buildStrategies(info.Artist, info.SongTitle, genres, info.Moods, time.Now().Year())
	r.rng.Shuffle(len(strategies), func(i, j int) {
		strategies[i], strategies[j] = strategies[j], strategies[i]
	})

	// 3. Serial pass over strategies; first acceptable candidate wins.
	tried := make(map[string]struct{})
	sameArtistCount := 0

	for queryIdx, query := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results, err := r.search.Search(ctx, query, r.cfg.PerStrategyLimit)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("strategy search failed, continuing")
			continue
		}
		if len(results) == 0 {
			continue
		}

		for _, cand := range results {
			if !r.isValidCandidate(cand, refTitle, tried, isRecent, log) {
				continue
			}
			tried[cand.Title] = struct{}{}

			ok, counted := r.checkSameArtist(cand, info, sameArtistCount, queryIdx, log)
			if !ok {
				continue
			}
			if counted {
				sameArtistCount++
			}

			log.Info().
				Str("query", query).
				Str("picked", title.SafeTitle(cand.Title)).
				Msg("accepted candidate")
			return &domain.TrackRef{URL: cand.URL, Title: cand.Title}, nil
		}
	}

	// 4. Generic fallback, same validity filter, no same-artist cap.
	return r.tryFallback(ctx, refTitle, tried, isRecent, log)
}

// mergeProviderGenres unions catalog genres into the lexically derived set.
// Best effort: lookup failures contribute nothing.
func (r *Recommender) mergeProviderGenres(ctx context.Context, artist string, genres []string) []string {
	if r.genres == nil || artist == "" {
		return genres
	}
	extra, err := r.genres.ArtistGenres(ctx, artist)
	if err != nil {
		r.log.Debug().Err(err).Str("artist", artist).Msg("genre lookup failed")
		return genres
	}
	return dedupeStrings(append(genres, extra...))
}

// isValidCandidate applies the shared rejection filters: already tried, the
// reference track itself, non-music content, or recently played.
func (r *Recommender) isValidCandidate(
	cand domain.Candidate,
	refTitle string,
	tried map[string]struct{},
	isRecent RecentChecker,
	log zerolog.Logger,
) bool {
	if cand.URL == "" || cand.Title == "" {
		return false
	}
	if _, seen := tried[cand.Title]; seen {
		return false
	}
	if strings.EqualFold(cand.Title, refTitle) {
		log.Debug().Str("title", title.SafeTitle(cand.Title)).Msg("skipping reference track")
		return false
	}
	if !r.analyzer.IsLikelyMusicContent(cand.Title) {
		log.Debug().Str("title", title.SafeTitle(cand.Title)).Msg("skipping non-music content")
		return false
	}
	if isRecent != nil && isRecent(cand.Title) {
		log.Debug().Str("title", title.SafeTitle(cand.Title)).Msg("skipping recently played")
		return false
	}
	return true
}

// checkSameArtist gates candidates by the current track's artist. Returns
// (accept, countsTowardCap).
func (r *Recommender) checkSameArtist(
	cand domain.Candidate,
	ref domain.TitleInfo,
	sameArtistCount int,
	queryIdx int,
	log zerolog.Logger,
) (bool, bool) {
	candInfo := r.titles.Parse(cand.Title)
	if ref.Artist == "" || candInfo.Artist == "" || !strings.EqualFold(ref.Artist, candInfo.Artist) {
		// Different or unknown artist: accept without counting.
		return true, false
	}

	// Same artist. Reject the identical song outright.
	if ref.SongTitle != "" && candInfo.SongTitle != "" && strings.EqualFold(ref.SongTitle, candInfo.SongTitle) {
		log.Debug().Str("title", title.SafeTitle(cand.Title)).Msg("skipping same song by same artist")
		return false, false
	}

	capApplies := queryIdx > 0 || !r.cfg.CapSkipsFirstStrategy
	if capApplies && sameArtistCount >= r.cfg.MaxSameArtist {
		log.Debug().
			Str("artist", ref.Artist).
			Int("count", sameArtistCount).
			Msg("same-artist cap reached")
		return false, false
	}

	return true, true
}

func (r *Recommender) tryFallback(
	ctx context.Context,
	refTitle string,
	tried map[string]struct{},
	isRecent RecentChecker,
	log zerolog.Logger,
) (*domain.TrackRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := fallbackQuery(time.Now().Year())
	log.Info().Str("query", query).Msg("all strategies exhausted, trying fallback")

	results, err := r.search.Search(ctx, query, r.cfg.FallbackLimit)
	if err != nil {
		log.Warn().Err(err).Msg("fallback search failed")
		return nil, nil
	}

	for _, cand := range results {
		if !r.isValidCandidate(cand, refTitle, tried, isRecent, log) {
			continue
		}
		tried[cand.Title] = struct{}{}
		log.Info().Str("picked", title.SafeTitle(cand.Title)).Msg("accepted fallback candidate")
		return &domain.TrackRef{URL: cand.URL, Title: cand.Title}, nil
	}

	log.Warn().Msg("no suitable song found after all strategies")
	return nil, nil
}
