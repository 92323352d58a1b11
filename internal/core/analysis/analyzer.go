// Package analysis classifies titles along music-likelihood axes and derives
// enriched genre sets. Lexical heuristics only; classification fails open for
// ambiguous titles and closed on strong negative signals, because rejecting
// everything leaves radio mode silently dead while an occasional bad pick is
// just skipped next track.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ThermaloS/AetherBot/internal/core/title"
)

var yearRe = regexp.MustCompile(`\b20\d\d\b`)

// Analyzer classifies titles. Stateless apart from the shared title processor
// used for structured-extraction checks.
type Analyzer struct {
	titles *title.Processor
}

// NewAnalyzer constructs an Analyzer around a title processor.
func NewAnalyzer(titles *title.Processor) *Analyzer {
	return &Analyzer{titles: titles}
}

// IsLikelyMusicContent reports whether a title looks like a single piece of
// music rather than a compilation, reaction video, or other non-music upload.
func (a *Analyzer) IsLikelyMusicContent(raw string) bool {
	if raw == "" {
		return false
	}
	lower := strings.ToLower(raw)

	// Hard rejections first.
	for _, indicator := range albumIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}
	for _, indicator := range nonMusicIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}

	// Clickbait shape: mostly ALL-CAPS words.
	words := strings.Fields(raw)
	if len(words) > 3 {
		caps := 0
		for _, w := range words {
			if len(w) > 2 && w == strings.ToUpper(w) && w != strings.ToLower(w) {
				caps++
			}
		}
		if float64(caps)/float64(len(words)) > 0.4 {
			return false
		}
	}

	decorative := countDecorative(raw)
	if decorative > 3 || strings.Count(raw, "!") > 3 {
		return false
	}

	for _, indicator := range durationIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}

	// "2024 mix", "2023 set" and friends are long-form DJ content.
	if yearRe.MatchString(lower) && (strings.Contains(lower, "mix") || strings.Contains(lower, "set")) {
		return false
	}

	// Too many artist conjunctions reads as a compilation lineup. Counted
	// markers are blanked out so a longer marker cannot be recounted by a
	// shorter one it contains.
	conjunctions := 0
	remaining := lower
	for _, marker := range conjunctionMarkers {
		conjunctions += strings.Count(remaining, marker)
		remaining = strings.ReplaceAll(remaining, marker, " ")
	}
	if conjunctions > 2 {
		return false
	}

	// Positive signals.
	hasStandardFormat := strings.Contains(raw, " - ") ||
		(strings.Contains(lower, " by ") && !strings.Contains(lower, "react"))
	if hasStandardFormat {
		return true
	}

	for _, indicator := range musicIndicators {
		if strings.Contains(lower, indicator) && decorative <= 2 {
			return true
		}
	}

	info := a.titles.Parse(raw)
	return info.Artist != "" && info.SongTitle != ""
}

// EnhancedGenres unions four independent genre signals: lexical detection on
// the title, known-artist lookup, label/brand lookup, and a last-resort flat
// term scan. Never empty; "trending" is the guaranteed fallback so the
// recommender always has a query token.
func (a *Analyzer) EnhancedGenres(raw string, artist string) []string {
	lower := strings.ToLower(raw)
	found := make(map[string]struct{})

	for _, g := range title.DetectGenres(raw) {
		found[g] = struct{}{}
	}

	if artist != "" {
		artistLower := strings.ToLower(artist)
		for genre, names := range artistGenres {
			for _, name := range names {
				if strings.Contains(artistLower, name) {
					found[genre] = struct{}{}
					break
				}
			}
		}
	}

	combined := lower
	if artist != "" {
		combined = strings.ToLower(artist) + " " + lower
	}
	for label, genre := range labelGenres {
		if strings.Contains(combined, label) {
			found[genre] = struct{}{}
		}
	}

	if len(found) == 0 {
		for _, term := range genreTerms {
			if strings.Contains(lower, term) {
				if mapped, ok := genreRemap[term]; ok {
					found[mapped] = struct{}{}
				} else {
					found[term] = struct{}{}
				}
			}
		}
	}

	if len(found) == 0 {
		return []string{"trending"}
	}

	out := make([]string, 0, len(found))
	for g := range found {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

func countDecorative(raw string) int {
	n := 0
	for _, r := range raw {
		if r > 127 {
			n++
		}
	}
	return n
}
