package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ThermaloS/AetherBot/internal/core/analysis"
	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/title"
)

type captureStore struct {
	mu      sync.Mutex
	records []domain.PlayRecord
}

func (s *captureStore) LoadConfigs(context.Context) (map[string]bool, error) { return nil, nil }

func (s *captureStore) SaveConfig(context.Context, string, bool) error { return nil }

func (s *captureStore) RecordPlay(_ context.Context, rec domain.PlayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *captureStore) RecentPlays(context.Context, string, int) ([]domain.PlayRecord, error) {
	return nil, nil
}

type stubPreviews struct {
	url string
	err error
}

func (s *stubPreviews) PreviewURL(context.Context, string, string) (string, error) {
	return s.url, s.err
}

func TestPool_EnrichesAndRecordsPlays(t *testing.T) {
	orig := AnalyzePreviewFunc
	AnalyzePreviewFunc = func(string) (float64, error) { return 0.42, nil }
	defer func() { AnalyzePreviewFunc = orig }()

	store := &captureStore{}
	titles := title.NewProcessor(title.DefaultCacheSize)
	pool := NewPool(store, titles, analysis.NewAnalyzer(titles), &stubPreviews{url: "https://p.test/preview"}, 4)
	pool.Start(2)

	pool.Submit(Job{GuildID: "g1", URL: "u1", Title: "Daft Punk - One More Time (Official Audio)"})
	pool.Submit(Job{GuildID: "g1", URL: "u2", Title: ""}) // skipped, no title
	pool.Stop()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.records) != 1 {
		t.Fatalf("got %d records, want 1", len(store.records))
	}
	rec := store.records[0]
	if rec.Artist != "Daft Punk" {
		t.Errorf("Artist = %q", rec.Artist)
	}
	if rec.Fingerprint != "daftpunk_onemoretime" {
		t.Errorf("Fingerprint = %q", rec.Fingerprint)
	}
	if len(rec.Genres) == 0 {
		t.Error("Genres should never be empty")
	}
	if rec.Energy != 0.42 {
		t.Errorf("Energy = %v, want the analyzed value", rec.Energy)
	}
}

func TestPool_PreviewFailureStillRecords(t *testing.T) {
	store := &captureStore{}
	titles := title.NewProcessor(title.DefaultCacheSize)
	pool := NewPool(store, titles, analysis.NewAnalyzer(titles), &stubPreviews{err: errors.New("catalog down")}, 4)
	pool.Start(1)

	pool.Submit(Job{GuildID: "g1", URL: "u1", Title: "Daft Punk - One More Time"})
	pool.Stop()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.records) != 1 {
		t.Fatalf("got %d records, want 1", len(store.records))
	}
	if store.records[0].Energy != 0 {
		t.Errorf("Energy = %v, want zero when preview lookup fails", store.records[0].Energy)
	}
}

func TestPool_NilPreviewsSkipsAnalysis(t *testing.T) {
	called := false
	orig := AnalyzePreviewFunc
	AnalyzePreviewFunc = func(string) (float64, error) {
		called = true
		return 0, nil
	}
	defer func() { AnalyzePreviewFunc = orig }()

	store := &captureStore{}
	titles := title.NewProcessor(title.DefaultCacheSize)
	pool := NewPool(store, titles, analysis.NewAnalyzer(titles), nil, 4)
	pool.Start(1)
	pool.Submit(Job{GuildID: "g1", URL: "u1", Title: "Daft Punk - One More Time"})
	pool.Stop()

	if called {
		t.Error("preview analysis should be skipped without a preview provider")
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.records) != 1 {
		t.Fatalf("got %d records, want 1", len(store.records))
	}
}
