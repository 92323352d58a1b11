package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
	"github.com/ThermaloS/AetherBot/internal/core/title"
)

// mockStore records config writes and serves a seeded config map.
type mockStore struct {
	mu      sync.Mutex
	configs map[string]bool
	saves   []string
	loadErr error
}

func newMockStore(configs map[string]bool) *mockStore {
	if configs == nil {
		configs = make(map[string]bool)
	}
	return &mockStore{configs: configs}
}

func (m *mockStore) LoadConfigs(context.Context) (map[string]bool, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make(map[string]bool, len(m.configs))
	for k, v := range m.configs {
		out[k] = v
	}
	return out, nil
}

func (m *mockStore) SaveConfig(_ context.Context, guildID string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[guildID] = enabled
	m.saves = append(m.saves, guildID)
	return nil
}

func (m *mockStore) RecordPlay(context.Context, domain.PlayRecord) error { return nil }

func (m *mockStore) RecentPlays(context.Context, string, int) ([]domain.PlayRecord, error) {
	return nil, nil
}

var _ ports.RadioStore = (*mockStore)(nil)

func newTestRadio(t *testing.T, search ports.SearchProvider, store ports.RadioStore) *Radio {
	t.Helper()
	titles := title.NewProcessor(title.DefaultCacheSize)
	rec := newTestRecommender(search, DefaultRecommendConfig())
	return NewRadio(context.Background(), rec, titles, store, zerolog.Nop(), DefaultRadioConfig())
}

func TestRadio_ToggleFlipsAndPersists(t *testing.T) {
	store := newMockStore(nil)
	radio := newTestRadio(t, &mockSearch{}, store)

	if radio.IsEnabled("g1") {
		t.Fatal("unknown guild must start disabled")
	}
	if got := radio.Toggle(context.Background(), "g1"); !got {
		t.Error("first toggle should enable")
	}
	if got := radio.Toggle(context.Background(), "g1"); got {
		t.Error("second toggle should disable")
	}
	if radio.IsEnabled("g1") {
		t.Error("guild should be disabled after two toggles")
	}
	if len(store.saves) != 2 {
		t.Errorf("got %d persisted writes, want 2", len(store.saves))
	}
}

func TestRadio_LoadsPersistedConfigs(t *testing.T) {
	store := newMockStore(map[string]bool{"g1": true, "g2": false})
	radio := newTestRadio(t, &mockSearch{}, store)

	if !radio.IsEnabled("g1") {
		t.Error("g1 should load enabled")
	}
	if radio.IsEnabled("g2") {
		t.Error("g2 should load disabled")
	}
	if radio.IsEnabled("g3") {
		t.Error("unknown guild should default disabled")
	}
}

func TestRadio_IsRecentlyPlayed(t *testing.T) {
	radio := newTestRadio(t, &mockSearch{}, nil)
	radio.RecordPlayed("g1", domain.TrackRef{
		URL:   "https://example.com/a",
		Title: "Daft Punk - One More Time (Official Video)",
	})

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact title", "Daft Punk - One More Time (Official Video)", true},
		{"same track different decoration", "Daft Punk - One More Time (Official Audio)", true},
		{"same song different artist", "Some Band - One More Time", true},
		{"unrelated track", "Metallica - Enter Sandman (Official Audio)", false},
		{"same artist different song", "Daft Punk - Harder Better Faster Stronger", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := radio.IsRecentlyPlayed("g1", tt.candidate); got != tt.want {
				t.Errorf("IsRecentlyPlayed(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}

	if radio.IsRecentlyPlayed("empty-guild", "anything") {
		t.Error("guild with no history should never report recently played")
	}
}

func TestRadio_OnQueueExhausted_DisabledIsNoop(t *testing.T) {
	search := &mockSearch{}
	radio := newTestRadio(t, search, nil)

	pick := radio.OnQueueExhausted(context.Background(), "g1",
		domain.TrackRef{URL: "u", Title: "Daft Punk - One More Time"}, nil)
	if pick != nil {
		t.Fatalf("disabled radio returned a pick: %+v", pick)
	}
	if len(search.queries) != 0 {
		t.Errorf("disabled radio issued %d searches", len(search.queries))
	}
}

func TestRadio_OnQueueExhausted_ReturnsPickAndRecordsHistory(t *testing.T) {
	search := &mockSearch{respond: func(string) ([]domain.Candidate, error) {
		return []domain.Candidate{
			{Title: "Justice - D.A.N.C.E. (Official Audio)", URL: "https://example.com/pick"},
		}, nil
	}}
	radio := newTestRadio(t, search, nil)
	radio.SetEnabled(context.Background(), "g1", true)

	var notified []string
	notify := ports.NotifierFunc(func(_ context.Context, _ string, msg string) {
		notified = append(notified, msg)
	})

	pick := radio.OnQueueExhausted(context.Background(), "g1",
		domain.TrackRef{URL: "https://example.com/ref", Title: "Daft Punk - One More Time"}, notify)
	if pick == nil {
		t.Fatal("expected a pick")
	}
	if pick.URL != "https://example.com/pick" {
		t.Errorf("pick.URL = %q", pick.URL)
	}
	if len(notified) != 0 {
		t.Errorf("successful pick should not notify, got %v", notified)
	}

	titles := radio.RecentTitles("g1", 0)
	if len(titles) != 2 {
		t.Fatalf("history has %d entries, want reference plus pick", len(titles))
	}
	if titles[len(titles)-1] != pick.Title {
		t.Errorf("latest history entry = %q, want the pick", titles[len(titles)-1])
	}
}

func TestRadio_OnQueueExhausted_NoPickNotifies(t *testing.T) {
	radio := newTestRadio(t, &mockSearch{}, nil)
	radio.SetEnabled(context.Background(), "g1", true)

	var notified []string
	notify := ports.NotifierFunc(func(_ context.Context, _ string, msg string) {
		notified = append(notified, msg)
	})

	pick := radio.OnQueueExhausted(context.Background(), "g1",
		domain.TrackRef{URL: "u", Title: "Daft Punk - One More Time"}, notify)
	if pick != nil {
		t.Fatalf("expected no pick, got %+v", pick)
	}
	if len(notified) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notified))
	}
	if !strings.Contains(notified[0], "similar song") {
		t.Errorf("notification %q should explain the empty result", notified[0])
	}
}

func TestRadio_OnQueueExhausted_TitleFallsBackToHistory(t *testing.T) {
	search := &mockSearch{respond: func(string) ([]domain.Candidate, error) {
		return []domain.Candidate{
			{Title: "Justice - Genesis (Official Audio)", URL: "https://example.com/pick"},
		}, nil
	}}
	radio := newTestRadio(t, search, nil)
	radio.SetEnabled(context.Background(), "g1", true)
	radio.RecordPlayed("g1", domain.TrackRef{
		URL:   "https://example.com/prev",
		Title: "Daft Punk - One More Time",
	})

	// Direct-URL playback ends with no title on the completed track.
	pick := radio.OnQueueExhausted(context.Background(), "g1",
		domain.TrackRef{URL: "https://example.com/direct"}, nil)
	if pick == nil {
		t.Fatal("expected a pick derived from the cached title")
	}
	if pick.URL != "https://example.com/pick" {
		t.Errorf("pick.URL = %q", pick.URL)
	}
}

func TestRadio_OnQueueExhausted_NoReferenceIsNoop(t *testing.T) {
	search := &mockSearch{}
	radio := newTestRadio(t, search, nil)
	radio.SetEnabled(context.Background(), "g1", true)

	pick := radio.OnQueueExhausted(context.Background(), "g1", domain.TrackRef{URL: "u"}, nil)
	if pick != nil {
		t.Fatalf("no reference title should yield no pick, got %+v", pick)
	}
	if len(search.queries) != 0 {
		t.Errorf("no reference title should not search, got %d queries", len(search.queries))
	}
}
