package ytsearch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
)

func newSearchServer(t *testing.T, items []searchItem) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/search" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("type"); got != "video" {
			t.Errorf("type query = %q, want video", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
}

func TestSearch_MapsAndFiltersResults(t *testing.T) {
	ts := newSearchServer(t, []searchItem{
		{Type: "video", Title: "Artist - Song One", VideoID: "id1", Author: "Artist", LengthSeconds: 215},
		{Type: "playlist", Title: "Big Playlist", VideoID: "pl"},
		{Type: "video", Title: "Live Stream", VideoID: "id2", LiveNow: true},
		{Type: "video", Title: "3 Hour Mix", VideoID: "id3", LengthSeconds: 10800},
		{Type: "video", Title: "Artist - Song Two", VideoID: "id4", Author: "Artist", LengthSeconds: 180},
	})
	defer ts.Close()

	client := NewClient(nil, ts.URL)
	got, err := client.Search(context.Background(), "artist singles", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := []domain.Candidate{
		{Title: "Artist - Song One", URL: "https://www.youtube.com/watch?v=id1", DurationSeconds: 215, Uploader: "Artist"},
		{Title: "Artist - Song Two", URL: "https://www.youtube.com/watch?v=id4", DurationSeconds: 180, Uploader: "Artist"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSearch_AppliesLimit(t *testing.T) {
	items := make([]searchItem, 5)
	for i := range items {
		items[i] = searchItem{Type: "video", Title: "t", VideoID: "id", LengthSeconds: 100}
	}
	ts := newSearchServer(t, items)
	defer ts.Close()

	client := NewClient(nil, ts.URL)
	got, err := client.Search(context.Background(), "q", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
}

func TestSearch_WrapsFailuresAsProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(nil, ts.URL, WithRetry(2, time.Millisecond))
	_, err := client.Search(context.Background(), "boom", 5)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ports.ErrProvider) {
		t.Errorf("err = %v, want ports.ErrProvider", err)
	}
	var provErr *ports.ProviderError
	if !errors.As(err, &provErr) || provErr.Query != "boom" {
		t.Errorf("err = %v, want *ports.ProviderError carrying the query", err)
	}
}

func TestSearch_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]searchItem{
			{Type: "video", Title: "t", VideoID: "id", LengthSeconds: 100},
		})
	}))
	defer ts.Close()

	client := NewClient(nil, ts.URL, WithRetry(3, time.Millisecond))
	got, err := client.Search(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("Search after retries: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestResolvePlayableURL(t *testing.T) {
	ts := newSearchServer(t, []searchItem{
		{Type: "video", Title: "Artist - Song", VideoID: "abc", LengthSeconds: 200},
	})
	defer ts.Close()

	client := NewClient(nil, ts.URL)

	t.Run("passes URLs through", func(t *testing.T) {
		direct := "https://example.com/watch?v=direct"
		got, err := client.ResolvePlayableURL(context.Background(), direct)
		if err != nil {
			t.Fatalf("ResolvePlayableURL: %v", err)
		}
		if got != direct {
			t.Errorf("got %q, want the input URL", got)
		}
	})

	t.Run("resolves queries via search", func(t *testing.T) {
		got, err := client.ResolvePlayableURL(context.Background(), "artist song")
		if err != nil {
			t.Fatalf("ResolvePlayableURL: %v", err)
		}
		if got != "https://www.youtube.com/watch?v=abc" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		empty := newSearchServer(t, nil)
		defer empty.Close()
		client := NewClient(nil, empty.URL)
		if _, err := client.ResolvePlayableURL(context.Background(), "nothing here"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("err = %v, want domain.ErrNotFound", err)
		}
	})
}

func TestWithWatchBase(t *testing.T) {
	ts := newSearchServer(t, []searchItem{
		{Type: "video", Title: "t", VideoID: "xyz", LengthSeconds: 90},
	})
	defer ts.Close()

	client := NewClient(nil, ts.URL, WithWatchBase(ts.URL+"/"))
	got, err := client.Search(context.Background(), "q", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if want := ts.URL + "/watch?v=xyz"; got[0].URL != want {
		t.Errorf("URL = %q, want %q", got[0].URL, want)
	}
}
