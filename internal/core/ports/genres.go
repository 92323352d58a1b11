package ports

import "context"

// GenreProvider looks up genres for an artist from an external catalog.
// Optional: a nil provider or a lookup failure simply contributes nothing to
// the genre union.
type GenreProvider interface {
	ArtistGenres(ctx context.Context, artist string) ([]string, error)
}

// TrackPreview is an optional extension of GenreProvider for catalogs that
// expose short audio previews.
type TrackPreview interface {
	PreviewURL(ctx context.Context, artist string, title string) (string, error)
}
