package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ThermaloS/AetherBot/internal/adapters/ytsearch"
	"github.com/ThermaloS/AetherBot/internal/core/analysis"
	"github.com/ThermaloS/AetherBot/internal/core/services"
	"github.com/ThermaloS/AetherBot/internal/core/title"
)

// recommendCmd runs one recommendation pass from the command line. Handy for
// tuning the heuristics without standing up the whole service.
var recommendCmd = &cobra.Command{
	Use:   "recommend <title>",
	Short: "Find one similar song for a reference title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		refTitle := strings.Join(args, " ")

		search := ytsearch.NewClient(nil, cfg.Search.BaseURL,
			ytsearch.WithRetry(cfg.Search.MaxRetries, cfg.Search.BaseBackoff),
			ytsearch.WithWatchBase(cfg.Search.WatchBase),
		)
		titles := title.NewProcessor(cfg.Radio.TitleCacheSize)
		recommender := services.NewRecommender(
			search,
			titles,
			analysis.NewAnalyzer(titles),
			nil,
			rand.New(rand.NewSource(time.Now().UnixNano())),
			log.Logger,
			services.RecommendConfig{
				MaxSameArtist:         cfg.Radio.MaxSameArtist,
				CapSkipsFirstStrategy: cfg.Radio.CapSkipsFirstStrategy,
				PerStrategyLimit:      cfg.Radio.PerStrategyLimit,
				FallbackLimit:         cfg.Radio.FallbackLimit,
			},
		)

		pick, err := recommender.FindSimilarSong(cmd.Context(), refTitle, nil)
		if err != nil {
			return err
		}
		if pick == nil {
			fmt.Println("no similar song found")
			return nil
		}

		fmt.Printf("%s\n%s\n", pick.Title, pick.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}
