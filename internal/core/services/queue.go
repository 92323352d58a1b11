package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
)

// Queue is a per-guild FIFO playback queue. Track completion drives both the
// radio history and, when the queue runs dry, the radio extension cycle.
type Queue struct {
	mu     sync.Mutex
	queues map[string][]domain.TrackRef
	last   map[string]domain.TrackRef

	radio  *Radio
	notify ports.Notifier
	log    zerolog.Logger

	// onComplete receives every completed track for post-processing
	// (durable history, enrichment). Optional.
	onComplete func(guildID string, track domain.TrackRef)
}

// NewQueue constructs the queue service. radio and notify may be nil in
// tests; a nil radio disables queue extension.
func NewQueue(radio *Radio, notify ports.Notifier, logger zerolog.Logger) *Queue {
	return &Queue{
		queues: make(map[string][]domain.TrackRef),
		last:   make(map[string]domain.TrackRef),
		radio:  radio,
		notify: notify,
		log:    logger,
	}
}

// SetOnComplete registers a hook invoked for every completed track.
func (q *Queue) SetOnComplete(fn func(guildID string, track domain.TrackRef)) {
	q.onComplete = fn
}

// Append pushes a track onto the tail of a guild's queue.
func (q *Queue) Append(guildID string, track domain.TrackRef) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queues[guildID] = append(q.queues[guildID], track)
}

// Next pops the head of a guild's queue. ok is false when the queue is empty.
func (q *Queue) Next(guildID string) (track domain.TrackRef, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.queues[guildID]
	if len(items) == 0 {
		return domain.TrackRef{}, false
	}
	track = items[0]
	q.queues[guildID] = items[1:]
	return track, true
}

// Depth reports the number of queued tracks for a guild.
func (q *Queue) Depth(guildID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues[guildID])
}

// Items returns a copy of a guild's pending queue, head first.
func (q *Queue) Items(guildID string) []domain.TrackRef {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.queues[guildID]
	out := make([]domain.TrackRef, len(items))
	copy(out, items)
	return out
}

// Clear drops all pending tracks for a guild and returns how many were
// removed. The last-played reference survives so radio mode can still extend
// from it.
func (q *Queue) Clear(guildID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.queues[guildID])
	delete(q.queues, guildID)
	return n
}

// LastPlayed returns the last completed track for a guild, if any.
func (q *Queue) LastPlayed(guildID string) (domain.TrackRef, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	track, ok := q.last[guildID]
	return track, ok
}

// CompleteTrack records that a track finished playing. When the queue is now
// empty it hands control to the radio, which may append one similar track.
// The returned pick is non-nil only when the radio extended the queue.
func (q *Queue) CompleteTrack(ctx context.Context, guildID string, track domain.TrackRef) *domain.TrackRef {
	q.mu.Lock()
	q.last[guildID] = track
	empty := len(q.queues[guildID]) == 0
	q.mu.Unlock()

	if q.radio != nil && track.Title != "" {
		q.radio.RecordPlayed(guildID, track)
	}
	if q.onComplete != nil {
		q.onComplete(guildID, track)
	}

	if !empty || q.radio == nil {
		return nil
	}

	pick := q.radio.OnQueueExhausted(ctx, guildID, track, q.notify)
	if pick == nil {
		return nil
	}

	q.Append(guildID, *pick)
	q.log.Info().
		Str("guild", guildID).
		Str("url", pick.URL).
		Msg("radio extended queue")
	return pick
}
