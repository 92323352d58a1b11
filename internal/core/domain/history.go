package domain

// History is the bounded recently-played memory for one guild. Two parallel
// structures are kept with independent capacities: a URL list for exact-match
// dedup and a richer title list for similarity checks. Both evict oldest-first.
type History struct {
	maxURLs   int
	maxTitles int
	urls      []string
	urlSet    map[string]struct{}
	entries   []TrackRef
}

// NewHistory constructs a History with the given capacities. Non-positive
// capacities fall back to 1 so the structure always retains the latest entry.
func NewHistory(maxURLs int, maxTitles int) *History {
	if maxURLs < 1 {
		maxURLs = 1
	}
	if maxTitles < 1 {
		maxTitles = 1
	}
	return &History{
		maxURLs:   maxURLs,
		maxTitles: maxTitles,
		urlSet:    make(map[string]struct{}),
	}
}

// Add records a played track in both structures, evicting the oldest entries
// once either capacity is exceeded.
func (h *History) Add(url string, title string) {
	if url != "" {
		h.urls = append(h.urls, url)
		h.urlSet[url] = struct{}{}
		if len(h.urls) > h.maxURLs {
			evicted := h.urls[0]
			h.urls = h.urls[1:]
			// The same URL may appear again later in the window.
			if !containsString(h.urls, evicted) {
				delete(h.urlSet, evicted)
			}
		}
	}

	h.entries = append(h.entries, TrackRef{URL: url, Title: title})
	if len(h.entries) > h.maxTitles {
		h.entries = h.entries[1:]
	}
}

// ContainsURL reports whether url is in the recent URL window.
func (h *History) ContainsURL(url string) bool {
	_, ok := h.urlSet[url]
	return ok
}

// Titles returns the recent titles, oldest first.
func (h *History) Titles() []string {
	titles := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		titles = append(titles, e.Title)
	}
	return titles
}

// Entries returns a copy of the recent title window, oldest first.
func (h *History) Entries() []TrackRef {
	out := make([]TrackRef, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of entries in the title window.
func (h *History) Len() int {
	return len(h.entries)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
