package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/bizpro/internal/config"
	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/llm"
	"github.com/abhisek/bizpro/internal/session"
)

const janitorInterval = time.Minute

// loadConfig reads --env-file and applies --db and --preset on top of the
// environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("preset"); p != "" {
		cfg.Preset = p
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// services holds what both the TUI and the HTTP server run on.
type services struct {
	sessions *session.Service
	advisor  *jobmatch.Advisor
	closers  []io.Closer
}

// buildServices wires the session store and the job-match advisor.
// The in-memory store is swept until ctx is done.
func buildServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*services, error) {
	svc := &services{}
	catalog := session.NewCatalog()

	var store session.Store
	if cfg.RedisURL != "" {
		rs, err := session.NewRedisStore(ctx, cfg.RedisURL, catalog, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, rs)
		store = rs
		logger.Info("session store", "kind", "redis", "ttl", cfg.SessionTTL)
	} else if cfg.DBPath != "" {
		ss, err := session.OpenSQLiteStore(ctx, cfg.DBPath, catalog, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
		go ss.RunJanitor(ctx, janitorInterval)
		svc.closers = append(svc.closers, ss)
		store = ss
		logger.Info("session store", "kind", "sqlite", "path", cfg.DBPath, "ttl", cfg.SessionTTL)
	} else {
		ms := session.NewMemoryStore(catalog, cfg.SessionTTL)
		go ms.RunJanitor(ctx, janitorInterval)
		store = ms
		logger.Info("session store", "kind", "memory", "ttl", cfg.SessionTTL)
	}

	svc.sessions = session.NewService(session.Options{
		Store:   store,
		Catalog: catalog,
		Preset:  cfg.Preset,
		Logger:  logger.With("component", "session"),
	})

	advisor, err := buildAdvisor(ctx, cfg, logger)
	if err != nil {
		svc.Close()
		return nil, err
	}
	svc.advisor = advisor
	return svc, nil
}

// buildAdvisor returns a model-backed advisor when a provider is
// configured and a fallback-only one otherwise.
func buildAdvisor(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*jobmatch.Advisor, error) {
	acfg := jobmatch.DefaultConfig()
	acfg.Timeout = cfg.JobMatchTimeout
	if !cfg.LLM.Configured() {
		logger.Info("job match running on score-band fallback", "reason", "no LLM provider configured")
		return jobmatch.NewAdvisor(nil, acfg), nil
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM, logger.With("component", "llm"))
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	logger.Info("job match provider ready", "model", provider.ModelID())
	return jobmatch.NewAdvisor(provider, acfg), nil
}

func (s *services) Close() {
	for _, c := range s.closers {
		c.Close()
	}
}
