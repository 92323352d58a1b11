package spotify

// spotifyArtist is the subset of the artist object the adapter consumes.
type spotifyArtist struct {
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

// spotifyTrack is the subset of the track object the adapter consumes.
type spotifyTrack struct {
	Name       string `json:"name"`
	PreviewURL string `json:"preview_url"`
	Artists    []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

type artistSearchResponse struct {
	Artists struct {
		Items []spotifyArtist `json:"items"`
	} `json:"artists"`
}

type trackSearchResponse struct {
	Tracks struct {
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}
