package ytsearch

// searchItem is one entry of the Invidious /api/v1/search response. Only the
// fields the mapper consumes are declared.
type searchItem struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	VideoID       string `json:"videoId"`
	Author        string `json:"author"`
	LengthSeconds int    `json:"lengthSeconds"`
	LiveNow       bool   `json:"liveNow"`
}
