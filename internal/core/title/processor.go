// Package title derives structured metadata from free-text track titles and
// scores title similarity. Pure heuristics, no I/O; every extractor degrades
// to an empty result rather than failing.
package title

import (
	"regexp"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
)

// DefaultCacheSize bounds the parse memoization cache. Titles are
// caller-supplied arbitrary strings, so the cache must not grow unbounded.
const DefaultCacheSize = 512

var (
	bracketedRe  = regexp.MustCompile(`\[.*?\]`)
	parenRe      = regexp.MustCompile(`\(.*?\)`)
	pipedRe      = regexp.MustCompile(`\|.*?\|`)
	punctRe      = regexp.MustCompile(`[^\w\s\-&]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`\W+`)
)

// wholeWordRes is built once from the genre lexicon: term -> whole-word matcher.
var wholeWordRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, terms := range genreLexicon {
		for _, term := range terms {
			res[term] = regexp.MustCompile(`(^|[^a-z0-9&])` + regexp.QuoteMeta(term) + `([^a-z0-9&]|$)`)
		}
	}
	return res
}()

// Processor parses titles with a bounded memoization cache.
type Processor struct {
	cache *lru.Cache[string, domain.TitleInfo]
}

// NewProcessor constructs a Processor. cacheSize <= 0 uses DefaultCacheSize.
func NewProcessor(cacheSize int) *Processor {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, domain.TitleInfo](cacheSize)
	if err != nil {
		// lru.New only fails on non-positive size, which is guarded above.
		panic(err)
	}
	return &Processor{cache: cache}
}

// Parse derives full TitleInfo for a title, memoized on the exact string.
func (p *Processor) Parse(title string) domain.TitleInfo {
	if title == "" {
		return domain.TitleInfo{}
	}
	if info, ok := p.cache.Get(title); ok {
		return info
	}

	artist := ExtractArtist(title)
	info := domain.TitleInfo{
		Artist:    artist,
		SongTitle: ExtractSongTitle(title, artist),
		Featuring: extractFeaturing(title),
		Genres:    DetectGenres(title),
		Moods:     DetectMoods(title),
	}
	p.cache.Add(title, info)
	return info
}

// ExtractCoreTitle normalizes a title for comparison: lowercase, marketing
// boilerplate removed, bracketed segments dropped, punctuation stripped except
// hyphens, whitespace collapsed.
func ExtractCoreTitle(raw string) string {
	if raw == "" {
		return ""
	}

	t := strings.ToLower(raw)
	for _, b := range boilerplate {
		t = strings.ReplaceAll(t, b, "")
	}
	t = bracketedRe.ReplaceAllString(t, "")
	t = parenRe.ReplaceAllString(t, "")
	t = pipedRe.ReplaceAllString(t, "")
	t = punctRe.ReplaceAllString(t, "")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// ExtractArtist attempts to pull the primary artist out of a title. Returns
// "" when no heuristic matches confidently.
func ExtractArtist(raw string) string {
	if raw == "" {
		return ""
	}

	// Form 1: "Artist - Title".
	if idx := strings.Index(raw, " - "); idx != -1 {
		candidate := strings.TrimSpace(raw[:idx])
		if n := len(candidate); n >= 2 && n <= 29 {
			return candidate
		}
	}

	// Form 2: a short bracketed segment that is not a release/featuring tag.
	if strings.Contains(raw, "[") && strings.Contains(raw, "]") {
		for _, part := range strings.Split(raw, "[")[1:] {
			end := strings.Index(part, "]")
			if end == -1 {
				continue
			}
			segment := strings.TrimSpace(part[:end])
			lower := strings.ToLower(segment)
			// "ft"/"feat" must match as tokens: substring matching would
			// reject artist names that merely contain them ("Daft Punk").
			if strings.Contains(lower, "release") || hasFeaturingToken(lower) {
				continue
			}
			if len(segment) > 2 && len(strings.Fields(segment)) <= 3 {
				return segment
			}
		}
	}

	// Form 3: text after a featuring marker, trimmed at the next delimiter,
	// re-cased from the original string.
	lower := strings.ToLower(raw)
	for _, marker := range featuringMarkers {
		idx := strings.Index(lower, marker)
		if idx == -1 {
			continue
		}
		part := lower[idx+len(marker):]
		for _, end := range []string{")", "]", "-", "|"} {
			if cut := strings.Index(part, end); cut != -1 {
				part = part[:cut]
			}
		}
		part = strings.TrimSpace(part)
		if len(part) > 2 && len(strings.Fields(part)) <= 3 {
			if orig := strings.Index(lower, part); orig != -1 {
				return raw[orig : orig+len(part)]
			}
			return part
		}
	}

	return ""
}

// hasFeaturingToken reports whether a lowercased segment contains a featuring
// marker as a standalone word.
func hasFeaturingToken(lower string) bool {
	for _, field := range strings.Fields(lower) {
		switch strings.Trim(field, ".,:") {
		case "ft", "feat", "featuring":
			return true
		}
	}
	return false
}

// ExtractSongTitle pulls the song name out of a title. When the artist is
// known and sits before a " - " separator, the remainder wins; otherwise the
// text before a featuring marker, falling back to the core title.
func ExtractSongTitle(raw string, artist string) string {
	if raw == "" {
		return ""
	}

	if idx := strings.Index(raw, " - "); idx != -1 {
		prefix := strings.TrimSpace(raw[:idx])
		if artist == "" || strings.EqualFold(prefix, artist) ||
			strings.Contains(strings.ToLower(prefix), strings.ToLower(artist)) {
			return stripDecorations(raw[idx+3:])
		}
	}

	lower := strings.ToLower(raw)
	for _, marker := range featuringMarkers {
		if idx := strings.Index(lower, marker); idx > 0 {
			if cleaned := stripDecorations(raw[:idx]); cleaned != "" {
				return cleaned
			}
		}
	}

	return ExtractCoreTitle(raw)
}

// stripDecorations removes bracketed segments and boilerplate while keeping
// the original casing.
func stripDecorations(s string) string {
	t := bracketedRe.ReplaceAllString(s, "")
	t = parenRe.ReplaceAllString(t, "")
	if idx := strings.Index(t, "|"); idx != -1 {
		t = t[:idx]
	}
	lower := strings.ToLower(t)
	for _, b := range boilerplate {
		if idx := strings.Index(lower, b); idx != -1 {
			t = t[:idx] + t[idx+len(b):]
			lower = strings.ToLower(t)
		}
	}
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.Trim(strings.TrimSpace(t), "-– ")
}

// DetectGenres returns the top-level genres whose synonyms appear as whole
// words in the title. Subgenre hits fold up to their parent genre.
func DetectGenres(raw string) []string {
	if raw == "" {
		return nil
	}

	lower := strings.ToLower(raw)
	found := make(map[string]struct{})
	for genre, terms := range genreLexicon {
		for _, term := range terms {
			if wholeWordRes[term].MatchString(lower) {
				found[genre] = struct{}{}
				break
			}
		}
	}
	return sortedKeys(found)
}

// DetectMoods returns moods whose keywords appear anywhere in the title.
func DetectMoods(raw string) []string {
	if raw == "" {
		return nil
	}

	lower := strings.ToLower(raw)
	found := make(map[string]struct{})
	for mood, terms := range moodLexicon {
		for _, term := range terms {
			if strings.Contains(lower, term) {
				found[mood] = struct{}{}
				break
			}
		}
	}
	return sortedKeys(found)
}

// extractFeaturing lists guest artists named after a featuring marker.
func extractFeaturing(raw string) []string {
	lower := strings.ToLower(raw)
	for _, marker := range featuringMarkers {
		idx := strings.Index(lower, marker)
		if idx == -1 {
			continue
		}
		part := raw[idx+len(marker):]
		for _, end := range []string{")", "]", "-", "|"} {
			if cut := strings.Index(part, end); cut != -1 {
				part = part[:cut]
			}
		}
		var guests []string
		for _, piece := range strings.FieldsFunc(part, func(r rune) bool { return r == ',' || r == '&' }) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				guests = append(guests, piece)
			}
		}
		return guests
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
