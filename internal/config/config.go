package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultBatchSize   = 500
	maxBatchSize       = 5000
	defaultBusyTimeout = 5000
)

type Config struct {
	LogLevel    slog.Level
	BatchSize   int
	BusyTimeout int // milliseconds
}

// Load reads FXHIST_* environment variables.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("FXHIST")
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")
	v.SetDefault("batch_size", defaultBatchSize)
	v.SetDefault("busy_timeout", defaultBusyTimeout)

	return Config{
		LogLevel:    parseLevel(v.GetString("log_level")),
		BatchSize:   min(positiveOr(v.GetInt("batch_size"), defaultBatchSize), maxBatchSize),
		BusyTimeout: positiveOr(v.GetInt("busy_timeout"), defaultBusyTimeout),
	}
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func positiveOr(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}
