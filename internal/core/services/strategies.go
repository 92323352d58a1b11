package services

import (
	"fmt"
	"strings"
)

// buildStrategies generates the prioritized search-query list for one
// recommendation request. Queries explicitly push the provider away from
// mixes and compilations; the caller shuffles and deduplicates consumption
// order, so this list only needs to be rich, not ordered.
func buildStrategies(artist string, songTitle string, genres []string, moods []string, year int) []string {
	var queries []string

	// Different songs by the same artist, excluding the current one.
	if artist != "" {
		exclude := ""
		if songTitle != "" {
			exclude = fmt.Sprintf(" -%q", songTitle)
		}
		queries = append(queries,
			fmt.Sprintf("%s songs official audio%s", artist, exclude),
			fmt.Sprintf("%s single official audio%s", artist, exclude),
		)
	}

	// Genre-only queries, singles focus.
	for _, genre := range firstN(genres, 2) {
		queries = append(queries,
			fmt.Sprintf("%s music singles official audio -mix -compilation", genre),
			fmt.Sprintf("%s official release -mix -compilation", genre),
		)
	}

	// "songs like X" against the leading genre.
	if len(genres) > 0 && songTitle != "" {
		if simple := firstWords(songTitle, 3); simple != "" {
			queries = append(queries,
				fmt.Sprintf("%s songs like %s official audio -mix -compilation", genres[0], simple))
		}
	}

	// Curated per-genre phrasings.
	for _, genre := range firstN(genres, 2) {
		queries = append(queries,
			fmt.Sprintf("best %s songs %d official audio -mix -compilation -dj", genre, year),
			fmt.Sprintf("new %s singles %d -mix -compilation -dj", genre, year),
		)
		switch genre {
		case "hip hop":
			queries = append(queries, fmt.Sprintf("rap singles %d official audio -mix -compilation", year))
		case "electronic":
			queries = append(queries, "electronic singles official audio -mix -compilation")
		case "rock":
			queries = append(queries, "rock singles official audio -mix -compilation")
		case "pop":
			queries = append(queries, fmt.Sprintf("pop singles %d official audio -mix -compilation", year))
		}
	}

	// Similar-artist queries.
	if artist != "" && len(genres) > 0 {
		queries = append(queries,
			fmt.Sprintf("%s artists like %s singles official audio -mix", genres[0], artist),
			fmt.Sprintf("if you like %s single tracks official audio -mix", artist),
		)
	}

	// Mood-flavored queries.
	if len(moods) > 0 {
		if len(genres) > 0 {
			queries = append(queries,
				fmt.Sprintf("%s %s singles official audio -mix -compilation", moods[0], genres[0]))
		} else {
			queries = append(queries,
				fmt.Sprintf("%s singles official audio -mix -compilation", moods[0]))
		}
	}

	queries = dedupeStrings(queries)

	// Sparse metadata still needs enough angles to be worth shuffling.
	if len(queries) < 3 {
		if artist != "" {
			queries = append(queries,
				fmt.Sprintf("artists similar to %s singles official audio -mix", artist))
		}
		for _, genre := range firstN(genres, 1) {
			queries = append(queries,
				fmt.Sprintf("new %s releases official audio -mix", genre))
		}
		queries = append(queries,
			fmt.Sprintf("trending singles %d official audio -mix -compilation", year))
		queries = dedupeStrings(queries)
	}

	return queries
}

// fallbackQuery is the generic last resort after every strategy is exhausted.
func fallbackQuery(year int) string {
	return fmt.Sprintf("top singles %d official audio -mix -compilation", year)
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func dedupeStrings(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := list[:0]
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
