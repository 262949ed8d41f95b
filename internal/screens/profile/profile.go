// Package profile is the four-step profile form shown before the test.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	prof "github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/session"
	"github.com/abhisek/bizpro/internal/ui/components"
	"github.com/abhisek/bizpro/internal/ui/layout"
	"github.com/abhisek/bizpro/internal/ui/theme"
)

type step int

const (
	stepJob step = iota
	stepUsage
	stepGoal
	stepLevel
	stepCount
)

var stepTitles = [stepCount]string{
	"What is your job?",
	"Where do you use English? (choose all that apply)",
	"What is your goal?",
	"How would you rate your English today?",
}

// startedMsg carries the outcome of starting the session.
type startedMsg struct {
	sess *session.Session
	err  error
}

// ProfileScreen collects a profile and starts a session with it.
type ProfileScreen struct {
	deps   screens.Deps
	preset string
	// next builds the quiz for a started session.
	next func(*session.Session) screen.Screen

	step     step
	job      components.Menu
	usage    components.Checklist
	goal     components.Menu
	level    components.Menu
	starting bool
	errMsg   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

func New(deps screens.Deps, presetName string, next func(*session.Session) screen.Screen) *ProfileScreen {
	return &ProfileScreen{
		deps:   deps,
		preset: presetName,
		next:   next,
		job:    components.NewMenu(menuItems(prof.JobTypeOptions)),
		usage:  components.NewChecklist(labels(prof.UsageOptions)),
		goal:   components.NewMenu(menuItems(prof.GoalOptions)),
		level:  components.NewMenu(menuItems(prof.CurrentLevelOptions)),
	}
}

func menuItems[T ~string](opts []prof.Option[T]) []components.MenuItem {
	items := make([]components.MenuItem, len(opts))
	for i, o := range opts {
		items[i] = components.MenuItem{Label: o.Label, Desc: o.Desc}
	}
	return items
}

func labels[T ~string](opts []prof.Option[T]) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func (s *ProfileScreen) Init() tea.Cmd { return nil }

func (s *ProfileScreen) Title() string {
	return fmt.Sprintf("Your profile (%d/%d)", int(s.step)+1, int(stepCount))
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Move"}}
	if s.step == stepUsage {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	if s.step > stepJob {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	return hints
}

// Profile assembles the profile from the current selections.
func (s *ProfileScreen) Profile() prof.Profile {
	p := prof.Profile{
		JobType:      prof.JobTypeOptions[s.job.Selected].Value,
		Goal:         prof.GoalOptions[s.goal.Selected].Value,
		CurrentLevel: prof.CurrentLevelOptions[s.level.Selected].Value,
	}
	for _, i := range s.usage.Indexes() {
		p.EnglishUsage = append(p.EnglishUsage, prof.UsageOptions[i].Value)
	}
	return p
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		s.starting = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		quiz := s.next(msg.sess)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: quiz} }

	case tea.KeyPressMsg:
		if s.starting {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ProfileScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "backspace":
		if s.step > stepJob {
			s.step--
			s.errMsg = ""
		}
		return s, nil
	case "enter":
		if s.step == stepUsage && len(s.usage.Indexes()) == 0 {
			s.errMsg = "Choose at least one way you use English."
			return s, nil
		}
		s.errMsg = ""
		if s.step < stepLevel {
			s.step++
			return s, nil
		}
		s.starting = true
		return s, s.start()
	}

	switch s.step {
	case stepJob:
		s.job, _ = s.job.Update(msg)
	case stepUsage:
		s.usage, _ = s.usage.Update(msg)
	case stepGoal:
		s.goal, _ = s.goal.Update(msg)
	case stepLevel:
		s.level, _ = s.level.Update(msg)
	}
	return s, nil
}

func (s *ProfileScreen) start() tea.Cmd {
	p := s.Profile()
	return func() tea.Msg {
		sess, err := s.deps.Sessions.Start(context.Background(), s.preset, p)
		return startedMsg{sess: sess, err: err}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.step {
	case stepJob:
		body = s.job.View()
	case stepUsage:
		body = s.usage.View()
	case stepGoal:
		body = s.goal.View()
	case stepLevel:
		body = s.level.View()
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(stepTitles[s.step]))
	b.WriteString("\n\n")
	b.WriteString(body)
	switch {
	case s.starting:
		b.WriteString("\n" + theme.Hint.Render("Preparing your test..."))
	case s.errMsg != "":
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render(s.errMsg))
	}

	return components.Center(components.Panel(b.String(), cw), width, height)
}
