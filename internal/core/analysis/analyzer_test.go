package analysis

import (
	"testing"

	"github.com/ThermaloS/AetherBot/internal/core/title"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(title.NewProcessor(16))
}

func TestIsLikelyMusicContent(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "plain single with official audio tag",
			input: "Daft Punk - One More Time (Official Audio)",
			want:  true,
		},
		{
			name:  "full album compilation",
			input: "FULL ALBUM MIX 2024 (3 HOURS)",
			want:  false,
		},
		{
			name:  "reaction video",
			input: "Producer reacts to Daft Punk - One More Time",
			want:  false,
		},
		{
			name:  "all caps clickbait",
			input: "YOU WONT BELIEVE THIS INSANE DROP COMPILATION",
			want:  false,
		},
		{
			name:  "excessive exclamation",
			input: "Best song!!!! so good!!!!",
			want:  false,
		},
		{
			name:  "year plus mix",
			input: "Summer Vibes 2024 Mix",
			want:  false,
		},
		{
			name:  "too many artists",
			input: "A & B and C x D - Posse Cut",
			want:  false,
		},
		{
			name:  "featuring counts as one conjunction",
			input: "Daft Punk - One More Time featuring Romanthony & Friends",
			want:  true,
		},
		{
			name:  "music indicator without structure",
			input: "Midnight City lyrics",
			want:  true,
		},
		{
			name:  "empty title",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.IsLikelyMusicContent(tt.input); got != tt.want {
				t.Fatalf("IsLikelyMusicContent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnhancedGenres(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name   string
		input  string
		artist string
		want   string
	}{
		{
			name:   "lexical detection",
			input:  "Skrillex - Bangarang (Dubstep Remix)",
			artist: "",
			want:   "electronic",
		},
		{
			name:   "known artist lookup",
			input:  "Some Untagged Song",
			artist: "Kendrick Lamar",
			want:   "hip hop",
		},
		{
			name:   "label lookup",
			input:  "Cloud Nine [Monstercat Release]",
			artist: "",
			want:   "electronic",
		},
		{
			name:   "flat term remap",
			input:  "hard trap anthem",
			artist: "",
			want:   "hip hop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genres := a.EnhancedGenres(tt.input, tt.artist)
			found := false
			for _, g := range genres {
				if g == tt.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("EnhancedGenres(%q, %q) = %v, want to include %q", tt.input, tt.artist, genres, tt.want)
			}
		})
	}
}

func TestEnhancedGenres_TrendingFallback(t *testing.T) {
	a := newTestAnalyzer()
	genres := a.EnhancedGenres("Untitled 17", "")
	if len(genres) != 1 || genres[0] != "trending" {
		t.Fatalf("expected trending fallback, got %v", genres)
	}
}
