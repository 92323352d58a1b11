package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ThermaloS/AetherBot/internal/config"
)

var configFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aetherbot",
	Short: "Radio recommendation service for the AetherBot music bot",
	Long: `AetherBot's radio service keeps a guild's music queue alive: when the
queue runs dry with radio mode on, it derives artist, genre, and mood
metadata from the last played title, searches for similar singles, filters
out albums, mixes, and recent repeats, and appends one pick.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is ./aetherbot.yaml, then $HOME/.config/aetherbot/aetherbot.yaml)")
}

// loadConfig reads the config and applies the global logger settings.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return cfg, nil
}
