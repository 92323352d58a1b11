// Package config loads the application configuration from file, environment,
// and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Search  SearchConfig  `mapstructure:"search"`
	Spotify SpotifyConfig `mapstructure:"spotify"`
	Radio   RadioConfig   `mapstructure:"radio"`
	Worker  WorkerConfig  `mapstructure:"worker"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type SearchConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	WatchBase   string        `mapstructure:"watch_base"`
	MaxRetries  int           `mapstructure:"max_retries"`
	BaseBackoff time.Duration `mapstructure:"base_backoff"`
}

type SpotifyConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// Enabled reports whether catalog enrichment is configured.
func (c SpotifyConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type RadioConfig struct {
	SimilarityThreshold   float64       `mapstructure:"similarity_threshold"`
	MaxURLHistory         int           `mapstructure:"max_url_history"`
	MaxTitleHistory       int           `mapstructure:"max_title_history"`
	MaxSameArtist         int           `mapstructure:"max_same_artist"`
	CapSkipsFirstStrategy bool          `mapstructure:"cap_skips_first_strategy"`
	PerStrategyLimit      int           `mapstructure:"per_strategy_limit"`
	FallbackLimit         int           `mapstructure:"fallback_limit"`
	RecommendTimeout      time.Duration `mapstructure:"recommend_timeout"`
	TitleCacheSize        int           `mapstructure:"title_cache_size"`
}

type WorkerConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from the optional file at path, the AETHERBOT_*
// environment, and built-in defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("aetherbot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("aetherbot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/aetherbot")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.path", "aetherbot.db")

	v.SetDefault("search.base_url", "https://yt.artemislena.eu")
	v.SetDefault("search.watch_base", "https://www.youtube.com")
	v.SetDefault("search.max_retries", 3)
	v.SetDefault("search.base_backoff", 500*time.Millisecond)

	v.SetDefault("radio.similarity_threshold", 0.6)
	v.SetDefault("radio.max_url_history", 10)
	v.SetDefault("radio.max_title_history", 15)
	v.SetDefault("radio.max_same_artist", 3)
	v.SetDefault("radio.cap_skips_first_strategy", true)
	v.SetDefault("radio.per_strategy_limit", 8)
	v.SetDefault("radio.fallback_limit", 10)
	v.SetDefault("radio.recommend_timeout", 15*time.Second)
	v.SetDefault("radio.title_cache_size", 512)

	v.SetDefault("worker.workers", 2)
	v.SetDefault("worker.queue_size", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
