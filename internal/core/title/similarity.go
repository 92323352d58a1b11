package title

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Similarity weights. Artist identity matters more than song naming; a shared
// genre adds a flat bonus on top.
const (
	artistWeight    = 0.45
	songWeight      = 0.35
	genreBonus      = 0.20
	coverPenaltyMin = 0.7
)

// Similarity scores two titles in [0,1]. Commutative, and 1.0 for titles that
// normalize to the same core string. When structured extraction fails for
// either side it falls back to a plain sequence ratio of the core titles.
func Similarity(a string, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	coreA := ExtractCoreTitle(a)
	coreB := ExtractCoreTitle(b)
	if coreA == coreB {
		return 1.0
	}

	artistA := ExtractArtist(a)
	artistB := ExtractArtist(b)
	songA := ExtractSongTitle(a, artistA)
	songB := ExtractSongTitle(b, artistB)

	if artistA == "" || artistB == "" || songA == "" || songB == "" {
		return ratio(coreA, coreB)
	}

	artistSim := ratio(strings.ToLower(artistA), strings.ToLower(artistB))
	songSim := ratio(strings.ToLower(songA), strings.ToLower(songB))

	artistPart := artistWeight * artistSim
	// Identical song names under clearly different artists are usually covers
	// or reuploads, not the same record: halve the artist contribution so the
	// pair does not read as a duplicate of the original.
	if strings.EqualFold(songA, songB) && artistSim < coverPenaltyMin {
		artistPart *= 0.5
	}

	score := artistPart + songWeight*songSim
	// The bonus looks at the song portions only: a genre word embedded in an
	// artist name ("punk" in "Daft Punk") must not mark every pair by that
	// artist as sharing a genre.
	if sharesGenre(songA, songB) {
		score += genreBonus
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Fingerprint returns a cheap approximate identity key for a title:
// "artist_song" when both are extractable, else the squashed core title.
// Not collision free; callers treat it as a membership hint only.
func Fingerprint(raw string) string {
	artist := ExtractArtist(raw)
	song := ExtractSongTitle(raw, artist)
	if artist != "" && song != "" {
		return squash(artist) + "_" + squash(song)
	}
	return squash(ExtractCoreTitle(raw))
}

// SafeTitle replaces non-ASCII runes so arbitrary provider titles are safe for
// plain-text logs.
func SafeTitle(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r < 128 {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// sharesGenre reports whether both song strings carry at least one common
// detected genre.
func sharesGenre(a string, b string) bool {
	genresA := DetectGenres(a)
	if len(genresA) == 0 {
		return false
	}
	genresB := DetectGenres(b)
	for _, ga := range genresA {
		for _, gb := range genresB {
			if ga == gb {
				return true
			}
		}
	}
	return false
}

// ratio is a sequence similarity in [0,1] over two already-normalized strings.
func ratio(a string, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim)
}

func squash(s string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(s), "")
}
