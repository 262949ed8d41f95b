package intro

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
)

type stubScreen struct{ preset string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "profile" }
func (s *stubScreen) Title() string                          { return "Profile" }

func newTestIntro() (*IntroScreen, *[]string) {
	var chosen []string
	return New(func(name string) screen.Screen {
		chosen = append(chosen, name)
		return &stubScreen{preset: name}
	}), &chosen
}

func sendTicks(s *IntroScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

func TestIntro_Reveal(t *testing.T) {
	s, _ := newTestIntro()
	if strings.Contains(s.View(100, 30), "Quit") {
		t.Error("menu should not be visible at start")
	}
	sendTicks(s, 3)
	if s.ready() {
		t.Error("menu should not be ready after 300ms")
	}
	sendTicks(s, 5)
	if !s.ready() {
		t.Fatal("menu should be ready after 800ms")
	}
	if !strings.Contains(s.View(100, 30), "Quit") {
		t.Error("expected menu in view")
	}
	if _, cmd := s.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once the menu is shown")
	}
}

func TestIntro_KeySkipsAnimation(t *testing.T) {
	s, chosen := newTestIntro()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || !s.ready() {
		t.Fatal("first key should only skip the animation")
	}
	if len(*chosen) != 0 {
		t.Fatal("nothing should be chosen yet")
	}
}

func TestIntro_ChoosePreset(t *testing.T) {
	s, chosen := newTestIntro()
	s.elapsed = menuAt

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	want := preset.Names()[1]
	if len(*chosen) != 1 || (*chosen)[0] != want {
		t.Fatalf("chosen = %v, want %s", *chosen, want)
	}
	if msg.Screen.(*stubScreen).preset != want {
		t.Error("replacement screen built for wrong preset")
	}
}
