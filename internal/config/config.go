// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/bizpro/internal/llm"
	"github.com/abhisek/bizpro/internal/preset"
)

type Config struct {
	Addr   string
	Preset string

	// RedisURL selects the Redis session store.
	RedisURL string
	// DBPath selects the SQLite session store when RedisURL is empty.
	// With neither set sessions live in memory.
	DBPath     string
	SessionTTL time.Duration

	LogLevel  slog.Level
	LogFormat string // "text" or "json"

	JobMatchTimeout time.Duration
	LLM             llm.Config
}

// Load reads envFile (if it exists) and then the environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Addr:            getEnv("BIZPRO_ADDR", ":8080"),
		Preset:          getEnv("BIZPRO_PRESET", preset.Default),
		RedisURL:        os.Getenv("BIZPRO_REDIS_URL"),
		DBPath:          os.Getenv("BIZPRO_DB"),
		LogFormat:       strings.ToLower(getEnv("BIZPRO_LOG_FORMAT", "text")),
		LLM:             llm.ConfigFromEnv(),
		SessionTTL:      2 * time.Hour,
		JobMatchTimeout: 30 * time.Second,
	}

	var err error
	if cfg.SessionTTL, err = getDuration("BIZPRO_SESSION_TTL", cfg.SessionTTL); err != nil {
		return nil, err
	}
	if cfg.JobMatchTimeout, err = getDuration("BIZPRO_JOBMATCH_TIMEOUT", cfg.JobMatchTimeout); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("BIZPRO_LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("BIZPRO_LOG_LEVEL: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := preset.Get(c.Preset); err != nil {
		return fmt.Errorf("BIZPRO_PRESET: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("BIZPRO_LOG_FORMAT: want text or json, got %q", c.LogFormat)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("BIZPRO_SESSION_TTL must be positive")
	}
	return nil
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
