package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"BIZPRO_ADDR", "BIZPRO_PRESET", "BIZPRO_REDIS_URL", "BIZPRO_DB", "BIZPRO_SESSION_TTL",
	"BIZPRO_LOG_LEVEL", "BIZPRO_LOG_FORMAT", "BIZPRO_JOBMATCH_TIMEOUT",
	"BIZPRO_LLM_PROVIDER", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "core", cfg.Preset)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.JobMatchTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.LLM.Configured())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := strings.Join([]string{
		"BIZPRO_ADDR=:9090",
		"BIZPRO_PRESET=classic",
		"BIZPRO_SESSION_TTL=15m",
		"BIZPRO_LOG_LEVEL=debug",
		"BIZPRO_LOG_FORMAT=json",
		"ANTHROPIC_API_KEY=your_api_key_here",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "classic", cfg.Preset)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.LLM.Configured(), "placeholder key must not enable the model")
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BIZPRO_ADDR=:9090\n"), 0o600))
	t.Setenv("BIZPRO_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"unknown preset":   {"BIZPRO_PRESET", "toeic"},
		"bad duration":     {"BIZPRO_SESSION_TTL", "soon"},
		"bad log level":    {"BIZPRO_LOG_LEVEL", "chatty"},
		"bad log format":   {"BIZPRO_LOG_FORMAT", "xml"},
		"negative ttl":     {"BIZPRO_SESSION_TTL", "-1m"},
		"bad jobmatch ttl": {"BIZPRO_JOBMATCH_TIMEOUT", "10"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), kv[0])
		})
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogFormat: "json", LogLevel: slog.LevelWarn}
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
}
