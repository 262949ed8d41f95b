package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/scoring"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "job match" }
func (s *stubScreen) Title() string                          { return "Job match" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testResult() *diagnosis.Result {
	return &diagnosis.Result{
		Preset:                   "core",
		BusinessLevel:            classify.LevelAdvanced,
		BusinessLevelDescription: classify.LevelAdvanced.Description(),
		OverallScore:             72,
		SkillScores: scoring.Scores{
			{Key: "vocabulary", Value: 80},
			{Key: "reading", Value: 64},
		},
		Strengths:          []string{"Business vocabulary"},
		Weaknesses:         []string{"Reading comprehension"},
		InterviewReadiness: classify.Readiness{Level: classify.ReadinessReady, Description: "Ready for standard interviews"},
		GeneratedAt:        time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC),
	}
}

func TestResults_StatusAndView(t *testing.T) {
	s := New(screens.Deps{}, testResult(), nil)
	if s.Status() != "Professional Level  72/100  " {
		t.Errorf("Status = %q", s.Status())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Business vocabulary") {
		t.Error("expected strengths in view")
	}
}

func TestResults_JobMatchPushesScreen(t *testing.T) {
	var got *diagnosis.Result
	r := testResult()
	s := New(screens.Deps{}, r, func(res *diagnosis.Result) screen.Screen {
		got = res
		return &stubScreen{}
	})

	_, cmd := s.Update(keyPress('m'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if got != r {
		t.Error("job match screen should get the same result")
	}
}

func TestResults_Restart(t *testing.T) {
	s := New(screens.Deps{}, testResult(), nil)
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(screens.RestartMsg); !ok {
		t.Fatal("expected RestartMsg")
	}
}

func TestResults_Export(t *testing.T) {
	dir := t.TempDir()
	s := New(screens.Deps{ExportDir: dir}, testResult(), nil)

	_, cmd := s.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	s.Update(msg)

	path := filepath.Join(dir, "bizpro-20260304-093000.xlsx")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if !s.noticeOK || !strings.Contains(s.notice, path) {
		t.Errorf("notice = %q", s.notice)
	}
}
