// Package worker provides background enrichment for played tracks: metadata
// extraction, optional preview-energy analysis, and durable history writes.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ThermaloS/AetherBot/internal/core/analysis"
	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
	"github.com/ThermaloS/AetherBot/internal/core/title"
)

// Job represents one played track awaiting enrichment.
type Job struct {
	GuildID string
	URL     string
	Title   string
}

// Pool manages background workers for play-history enrichment.
type Pool struct {
	store    ports.RadioStore
	titles   *title.Processor
	analyzer *analysis.Analyzer
	previews ports.TrackPreview
	jobs     chan Job
	wg       sync.WaitGroup
}

// NewPool creates a worker pool. previews may be nil; energy analysis is then
// skipped.
func NewPool(
	store ports.RadioStore,
	titles *title.Processor,
	analyzer *analysis.Analyzer,
	previews ports.TrackPreview,
	queueSize int,
) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		store:    store,
		titles:   titles,
		analyzer: analyzer,
		previews: previews,
		jobs:     make(chan Job, queueSize),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking. Full queue drops the job: enrichment
// is best effort and must never stall playback.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		log.Warn().
			Str("guild", job.GuildID).
			Str("title", title.SafeTitle(job.Title)).
			Msg("worker: dropping enrichment job")
	}
}

func (p *Pool) processJob(job Job) {
	if job.Title == "" {
		log.Debug().Str("guild", job.GuildID).Msg("worker: no title, skipping enrichment")
		return
	}

	ctx := context.Background()

	info := p.titles.Parse(job.Title)
	rec := domain.PlayRecord{
		GuildID:     job.GuildID,
		URL:         job.URL,
		Title:       job.Title,
		Artist:      info.Artist,
		Genres:      p.analyzer.EnhancedGenres(job.Title, info.Artist),
		Fingerprint: title.Fingerprint(job.Title),
	}

	if p.previews != nil && info.Artist != "" && info.SongTitle != "" {
		if previewURL, err := p.previews.PreviewURL(ctx, info.Artist, info.SongTitle); err != nil {
			log.Debug().Err(err).Str("title", title.SafeTitle(job.Title)).Msg("worker: preview lookup failed")
		} else if previewURL != "" {
			if energy, err := AnalyzePreviewFunc(previewURL); err != nil {
				log.Debug().Err(err).Str("title", title.SafeTitle(job.Title)).Msg("worker: preview analysis failed")
			} else {
				rec.Energy = energy
			}
		}
	}

	if err := p.store.RecordPlay(ctx, rec); err != nil {
		log.Warn().Err(err).Str("guild", job.GuildID).Msg("worker: failed to record play")
		return
	}
	log.Debug().
		Str("guild", job.GuildID).
		Str("fingerprint", rec.Fingerprint).
		Msg("worker: play recorded")
}
