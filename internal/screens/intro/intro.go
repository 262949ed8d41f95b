package intro

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/ui/components"
	"github.com/abhisek/bizpro/internal/ui/layout"
	"github.com/abhisek/bizpro/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	menuAt       = 800 * time.Millisecond
)

type tickMsg time.Time

// IntroScreen shows the banner, then lets the user pick a test preset.
type IntroScreen struct {
	next    func(presetName string) screen.Screen
	menu    components.Menu
	elapsed time.Duration
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New builds the intro. next creates the screen that follows once a
// preset is chosen.
func New(next func(presetName string) screen.Screen) *IntroScreen {
	s := &IntroScreen{next: next}

	var items []components.MenuItem
	for _, name := range preset.Names() {
		p := preset.MustGet(name)
		items = append(items, components.MenuItem{
			Label:  p.Title,
			Desc:   fmt.Sprintf("%d questions", p.Plan().Total()),
			Action: s.choose(p.Name),
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	s.menu = components.NewMenu(items)
	return s
}

func (s *IntroScreen) choose(name string) func() tea.Cmd {
	return func() tea.Cmd {
		nextScreen := s.next(name)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: nextScreen} }
	}
}

func (s *IntroScreen) Title() string { return "" }

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose test"},
		{Key: "Enter", Description: "Start"},
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (s *IntroScreen) ready() bool { return s.elapsed >= menuAt }

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.ready() {
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case tea.KeyPressMsg:
		// The first key press skips the animation.
		if !s.ready() {
			s.elapsed = menuAt
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string
	if s.elapsed >= bannerAt {
		sections = append(sections,
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Find out where your business English stands"),
			theme.Subtitle.Render("Vocabulary, reading and workplace judgment in about 15 minutes"),
		)
	}
	if s.ready() {
		sections = append(sections, "", s.menu.View())
	}
	return components.Center(strings.Join(sections, "\n"), width, height)
}
