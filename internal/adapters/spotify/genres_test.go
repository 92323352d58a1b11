package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestArtistGenres(t *testing.T) {
	tests := []struct {
		name    string
		artist  string
		items   []spotifyArtist
		want    []string
		wantNil bool
	}{
		{
			name:   "case-insensitive name match",
			artist: "daft punk",
			items: []spotifyArtist{
				{Name: "Daft Punk Tribute Band", Genres: []string{"covers"}},
				{Name: "Daft Punk", Genres: []string{"electronic", "french house"}},
			},
			want: []string{"electronic", "french house"},
		},
		{
			name:    "no matching artist",
			artist:  "Daft Punk",
			items:   []spotifyArtist{{Name: "Someone Else", Genres: []string{"pop"}}},
			wantNil: true,
		},
		{
			name:    "empty result set",
			artist:  "Daft Punk",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("type"); got != "artist" {
					t.Errorf("type query = %q, want artist", got)
				}
				var body artistSearchResponse
				body.Artists.Items = tt.items
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(body)
			}))
			defer ts.Close()

			client := NewClientWithHTTP(nil, ts.URL)
			got, err := client.ArtistGenres(context.Background(), tt.artist)
			if err != nil {
				t.Fatalf("ArtistGenres: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("got %v, want nil", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("genre %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestArtistGenres_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClientWithHTTP(nil, ts.URL)
	if _, err := client.ArtistGenres(context.Background(), "Daft Punk"); err == nil {
		t.Fatal("expected an error on non-200 status")
	}
}

func TestPreviewURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "track" {
			t.Errorf("type query = %q, want track", got)
		}
		var body trackSearchResponse
		body.Tracks.Items = []spotifyTrack{
			{Name: "No Preview"},
			{Name: "One More Time", PreviewURL: "https://p.scdn.co/mp3-preview/abc"},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer ts.Close()

	client := NewClientWithHTTP(nil, ts.URL)
	got, err := client.PreviewURL(context.Background(), "Daft Punk", "One More Time")
	if err != nil {
		t.Fatalf("PreviewURL: %v", err)
	}
	if got != "https://p.scdn.co/mp3-preview/abc" {
		t.Errorf("got %q, want the first non-empty preview", got)
	}
}
