package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/bizpro/internal/app"
	"github.com/abhisek/bizpro/internal/config"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/session"
)

// runApp builds the services and launches the TUI. The terminal belongs
// to the TUI, so logs go to --log-file or nowhere.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.Logger(logOut)

	svc, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	resumeID, _ := cmd.Flags().GetString("resume")
	sess, err := resumeSession(ctx, cfg, svc, resumeID)
	if err != nil {
		return err
	}

	exportDir, _ := cmd.Flags().GetString("export-dir")
	return app.Run(ctx, screens.Deps{
		Sessions:  svc.sessions,
		Advisor:   svc.advisor,
		Logger:    logger,
		ExportDir: exportDir,
	}, sess)
}

// resumeSession loads the session named by --resume. An empty id means a
// fresh run and returns nil.
func resumeSession(ctx context.Context, cfg *config.Config, svc *services, id string) (*session.Session, error) {
	if id == "" {
		return nil, nil
	}
	if cfg.RedisURL == "" && cfg.DBPath == "" {
		return nil, errors.New("--resume needs a persistent session store: set --db or BIZPRO_REDIS_URL")
	}
	sess, err := svc.sessions.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return nil, fmt.Errorf("session %s not found or expired", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return sess, nil
}
