// Package results shows a finished diagnosis and offers the job match
// and a workbook export.
package results

import (
	"fmt"
	"os"
	"path/filepath"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/report"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/ui/components"
	"github.com/abhisek/bizpro/internal/ui/layout"
	"github.com/abhisek/bizpro/internal/ui/theme"
)

type exportedMsg struct {
	path string
	err  error
}

// ResultsScreen renders the report in a scrollable viewport.
type ResultsScreen struct {
	deps   screens.Deps
	result *diagnosis.Result
	// jobMatch builds the job-match screen pushed on "m".
	jobMatch func(*diagnosis.Result) screen.Screen

	vp       viewport.Model
	width    int
	notice   string
	noticeOK bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

func New(deps screens.Deps, result *diagnosis.Result, jobMatch func(*diagnosis.Result) screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		deps:     deps,
		result:   result,
		jobMatch: jobMatch,
		vp:       viewport.New(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Your diagnosis" }

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("%s  %d/100  ", s.result.BusinessLevel.Label(), s.result.OverallScore)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "M", Description: "Job match"},
		{Key: "E", Description: "Export .xlsx"},
		{Key: "R", Description: "Retake"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.err != nil {
			s.notice, s.noticeOK = "Export failed: "+msg.err.Error(), false
		} else {
			s.notice, s.noticeOK = "Saved "+msg.path, true
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "m":
			next := s.jobMatch(s.result)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		case "e":
			return s, s.export()
		case "r":
			return s, func() tea.Msg { return screens.RestartMsg{} }
		case "q":
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) export() tea.Cmd {
	result := s.result
	dir := s.deps.ExportDir
	return func() tea.Msg {
		data, err := report.WriteXLSX(result)
		if err != nil {
			return exportedMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("bizpro-%s.xlsx", result.GeneratedAt.Format("20060102-150405")))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if width != s.width {
		s.width = width
		s.vp.SetContent(report.RenderText(s.result, cw))
	}
	s.vp.SetWidth(cw)
	s.vp.SetHeight(max(height-2, 1))

	notice := ""
	if s.notice != "" {
		color := theme.Error
		if s.noticeOK {
			color = theme.Success
		}
		notice = lipgloss.NewStyle().Foreground(color).Render(s.notice)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, s.vp.View(), notice)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
