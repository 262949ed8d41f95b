// Package screens holds what every screen of the terminal app shares.
// The screens themselves live in subpackages, one per step of the flow:
// intro → profile → quiz → results → jobmatch.
package screens

import (
	"log/slog"

	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/session"
)

// Deps are the services the screens call into.
type Deps struct {
	Sessions *session.Service
	Advisor  *jobmatch.Advisor
	Logger   *slog.Logger
	// ExportDir is where the results screen writes workbooks.
	ExportDir string
}

// RestartMsg asks the app to drop the current flow and show the intro.
type RestartMsg struct{}

// Log returns the configured logger, or one that discards.
func (d Deps) Log() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
