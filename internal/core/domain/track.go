package domain

// TrackRef identifies a playable track: the reference the playback layer
// resolves (URL or search expression) plus its display title.
type TrackRef struct {
	URL   string
	Title string
}

// Candidate is a single raw search result from the media provider. Ephemeral,
// never persisted.
type Candidate struct {
	Title           string
	URL             string
	DurationSeconds int
	Uploader        string
}

// TitleInfo is structured metadata derived from a free-text title. Every field
// is best effort; an empty Artist or SongTitle means extraction failed.
type TitleInfo struct {
	Artist    string
	SongTitle string
	Featuring []string
	Genres    []string
	Moods     []string
}

// PlayRecord is one row of durable play history.
type PlayRecord struct {
	ID          string
	GuildID     string
	URL         string
	Title       string
	Artist      string
	Genres      []string
	Fingerprint string
	Energy      float64
}
