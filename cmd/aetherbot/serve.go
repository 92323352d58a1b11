package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ThermaloS/AetherBot/internal/adapters/rest"
	"github.com/ThermaloS/AetherBot/internal/adapters/spotify"
	"github.com/ThermaloS/AetherBot/internal/adapters/sqlite"
	"github.com/ThermaloS/AetherBot/internal/adapters/ytsearch"
	"github.com/ThermaloS/AetherBot/internal/config"
	"github.com/ThermaloS/AetherBot/internal/core/analysis"
	"github.com/ThermaloS/AetherBot/internal/core/domain"
	"github.com/ThermaloS/AetherBot/internal/core/ports"
	"github.com/ThermaloS/AetherBot/internal/core/services"
	"github.com/ThermaloS/AetherBot/internal/core/title"
	"github.com/ThermaloS/AetherBot/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the radio HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg config.Config) error {
	// 1. Driven adapters.
	store, err := sqlite.NewAdapter(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	search := ytsearch.NewClient(nil, cfg.Search.BaseURL,
		ytsearch.WithRetry(cfg.Search.MaxRetries, cfg.Search.BaseBackoff),
		ytsearch.WithWatchBase(cfg.Search.WatchBase),
	)

	var genres ports.GenreProvider
	var previews ports.TrackPreview
	if cfg.Spotify.Enabled() {
		spotifyClient := spotify.NewClient(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
		genres = spotifyClient
		previews = spotifyClient
		log.Info().Msg("spotify enrichment enabled")
	}

	// 2. Core services.
	titles := title.NewProcessor(cfg.Radio.TitleCacheSize)
	analyzer := analysis.NewAnalyzer(titles)

	recommender := services.NewRecommender(
		search,
		titles,
		analyzer,
		genres,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		log.Logger,
		services.RecommendConfig{
			MaxSameArtist:         cfg.Radio.MaxSameArtist,
			CapSkipsFirstStrategy: cfg.Radio.CapSkipsFirstStrategy,
			PerStrategyLimit:      cfg.Radio.PerStrategyLimit,
			FallbackLimit:         cfg.Radio.FallbackLimit,
		},
	)

	radio := services.NewRadio(ctx, recommender, titles, store, log.Logger, services.RadioConfig{
		SimilarityThreshold: cfg.Radio.SimilarityThreshold,
		MaxURLHistory:       cfg.Radio.MaxURLHistory,
		MaxTitleHistory:     cfg.Radio.MaxTitleHistory,
		RecommendTimeout:    cfg.Radio.RecommendTimeout,
	})

	notify := ports.NotifierFunc(func(_ context.Context, guildID string, message string) {
		log.Info().Str("guild", guildID).Str("message", message).Msg("radio notice")
	})
	queue := services.NewQueue(radio, notify, log.Logger)

	// 3. Background enrichment.
	pool := worker.NewPool(store, titles, analyzer, previews, cfg.Worker.QueueSize)
	pool.Start(cfg.Worker.Workers)
	defer pool.Stop()

	queue.SetOnComplete(func(guildID string, track domain.TrackRef) {
		pool.Submit(worker.Job{GuildID: guildID, URL: track.URL, Title: track.Title})
	})
	radio.SetOnPick(func(guildID string, pick domain.TrackRef) {
		pool.Submit(worker.Job{GuildID: guildID, URL: pick.URL, Title: pick.Title})
	})

	// 4. Driving adapter.
	handler := rest.NewHandler(radio, queue)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	log.Info().Str("addr", cfg.Server.Addr).Msg("aetherbot radio service listening")

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-sigCtx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
		return nil
	}
}
