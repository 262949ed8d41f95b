// Package app is the root Bubble Tea model of the terminal diagnosis.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/screens/intro"
	jobmatchscreen "github.com/abhisek/bizpro/internal/screens/jobmatch"
	"github.com/abhisek/bizpro/internal/screens/profile"
	"github.com/abhisek/bizpro/internal/screens/quiz"
	"github.com/abhisek/bizpro/internal/screens/results"
	"github.com/abhisek/bizpro/internal/session"
	"github.com/abhisek/bizpro/internal/ui/layout"
)

// flow builds each screen of intro → profile → quiz → results → job match
// with the shared dependencies.
type flow struct {
	deps screens.Deps
}

func (f flow) intro() screen.Screen {
	return intro.New(f.profile)
}

func (f flow) profile(presetName string) screen.Screen {
	return profile.New(f.deps, presetName, f.quiz)
}

func (f flow) quiz(sess *session.Session) screen.Screen {
	return quiz.New(f.deps, sess, f.results)
}

func (f flow) results(r *diagnosis.Result) screen.Screen {
	return results.New(f.deps, r, f.jobMatch)
}

func (f flow) jobMatch(r *diagnosis.Result) screen.Screen {
	return jobmatchscreen.New(f.deps, r)
}

// resume reopens a stored session at the step it stopped on.
func (f flow) resume(sess *session.Session) screen.Screen {
	if sess.Result != nil {
		return f.results(sess.Result)
	}
	return f.quiz(sess)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	flow   flow
	router *router.Router
	width  int
	height int
}

func New(deps screens.Deps) AppModel {
	f := flow{deps: deps}
	return AppModel{flow: f, router: router.New(f.intro())}
}

// Resume builds the model around an existing session instead of the intro.
func Resume(deps screens.Deps, sess *session.Session) AppModel {
	f := flow{deps: deps}
	return AppModel{flow: f, router: router.New(f.resume(sess))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screens.RestartMsg:
		for m.router.Depth() > 1 {
			m.router.Pop()
		}
		return m, m.router.Replace(m.flow.intro())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = append(hp.KeyHints(), hints...)
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the program and blocks until the user quits or ctx ends. A
// non-nil sess skips the intro and continues that session.
func Run(ctx context.Context, deps screens.Deps, sess *session.Session) error {
	m := New(deps)
	if sess != nil {
		m = Resume(deps, sess)
	}
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
