// Package jobmatch is the screen that compares the diagnosis with a job
// posting pasted by the user.
package jobmatch

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/ui/components"
	"github.com/abhisek/bizpro/internal/ui/layout"
	"github.com/abhisek/bizpro/internal/ui/theme"
)

const (
	postingLimit = 20000
	spinInterval = 120 * time.Millisecond
)

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type analyzedMsg struct {
	result *jobmatch.Result
	err    error
}

type spinMsg time.Time

// JobMatchScreen collects a posting and shows the advisor's verdict. A
// failed analysis leaves the posting in place for another try.
type JobMatchScreen struct {
	deps     screens.Deps
	snapshot diagnosis.Snapshot

	input   components.TextArea
	running bool
	frame   int
	result  *jobmatch.Result
	failed  bool
}

var _ screen.Screen = (*JobMatchScreen)(nil)
var _ screen.KeyHintProvider = (*JobMatchScreen)(nil)

func New(deps screens.Deps, result *diagnosis.Result) *JobMatchScreen {
	return &JobMatchScreen{
		deps:     deps,
		snapshot: result.Snapshot(),
		input:    components.NewTextArea("Paste the job posting here...", postingLimit),
	}
}

func (s *JobMatchScreen) Init() tea.Cmd { return s.input.Init() }

func (s *JobMatchScreen) Title() string { return "Job match" }

func (s *JobMatchScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "N", Description: "New posting"},
			{Key: "Esc", Description: "Back to results"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Analyze"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (s *JobMatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzedMsg:
		s.running = false
		if msg.err != nil {
			s.deps.Log().Warn("job match failed", "error", msg.err)
			s.failed = true
			return s, nil
		}
		s.result = msg.result
		return s, nil

	case spinMsg:
		if !s.running {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinFrames)
		return s, spin()

	case tea.KeyPressMsg:
		if s.running {
			return s, nil
		}
		if s.result != nil {
			if msg.String() == "n" {
				s.result = nil
				s.input.SetValue("")
				return s, s.input.Init()
			}
			return s, nil
		}
		if msg.String() == "ctrl+s" {
			return s, s.analyze()
		}
	}

	if s.running || s.result != nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func spin() tea.Cmd {
	return tea.Tick(spinInterval, func(t time.Time) tea.Msg { return spinMsg(t) })
}

func (s *JobMatchScreen) analyze() tea.Cmd {
	posting := s.input.Value()
	if posting == "" {
		return nil
	}
	s.running, s.failed = true, false
	req := jobmatch.Request{JobDescription: posting, UserProfile: s.snapshot}
	advisor := s.deps.Advisor
	return tea.Batch(spin(), func() tea.Msg {
		res, err := advisor.Analyze(context.Background(), req)
		return analyzedMsg{result: res, err: err}
	})
}

func (s *JobMatchScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	switch {
	case s.result != nil:
		b.WriteString(renderResult(s.result, cw-4))
	case s.running:
		b.WriteString(theme.Title.Render("Paste a job posting"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(spinFrames[s.frame]))
		b.WriteString(theme.Hint.Render(" Analyzing the posting against your results..."))
	default:
		b.WriteString(theme.Title.Render("Paste a job posting"))
		b.WriteString("\n\n")
		if !s.deps.Advisor.Live() {
			b.WriteString(theme.Hint.Width(cw - 4).Render("No model is configured, so the match uses your score bands only."))
			b.WriteString("\n\n")
		}
		b.WriteString(s.input.View(cw - 4))
		if s.failed {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Width(cw - 4).
				Render("Could not analyze the job match. Your diagnosis is unchanged; press Ctrl+S to try again."))
		}
	}
	return components.Center(components.Panel(b.String(), cw), width, height)
}

var levelLabels = map[jobmatch.MatchLevel]string{
	jobmatch.MatchHigh:     "Strong match",
	jobmatch.MatchMedium:   "Possible match",
	jobmatch.MatchLow:      "Stretch",
	jobmatch.MatchNotReady: "Not ready yet",
}

func renderResult(r *jobmatch.Result, w int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(w)
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Render(levelLabels[r.MatchLevel]))
	b.WriteString("\n")
	b.WriteString(body.Render(r.MatchDescription))
	b.WriteString("\n")
	list := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n" + head.Render(title) + "\n")
		for _, it := range items {
			b.WriteString(body.Render("  • "+it) + "\n")
		}
	}
	list("What fits", r.MatchingPoints)
	list("Gaps", r.GapPoints)
	b.WriteString("\n" + head.Render("Advice") + "\n")
	b.WriteString(body.Render(r.Advice) + "\n")
	if r.EstimatedToeicRange != "" || r.RequiredToeicEstimate != "" {
		b.WriteString("\n" + theme.Hint.Render("TOEIC estimate: "+r.EstimatedToeicRange+
			"   Required: "+r.RequiredToeicEstimate))
	}
	return b.String()
}
