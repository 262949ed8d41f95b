package jobmatch

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/llm"
	"github.com/abhisek/bizpro/internal/screens"
)

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testResult() *diagnosis.Result {
	return &diagnosis.Result{
		BusinessLevel:      classify.LevelIntermediate,
		OverallScore:       58,
		Strengths:          []string{"Email etiquette"},
		Weaknesses:         []string{"Negotiation"},
		InterviewReadiness: classify.Readiness{Level: classify.ReadinessBasic},
	}
}

// analyze submits the posting and returns the analyzedMsg, skipping the
// spinner tick that is batched with it.
func analyze(t *testing.T, s *JobMatchScreen) {
	t.Helper()
	s.input.SetValue("Inside sales representative, APAC accounts.")
	_, cmd := s.Update(ctrlKey('s'))
	if cmd == nil || !s.running {
		t.Fatal("expected analysis to start")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected a batch")
	}
	for _, c := range batch {
		if msg, ok := c().(analyzedMsg); ok {
			s.Update(msg)
			return
		}
	}
	t.Fatal("no analyzedMsg in batch")
}

func TestJobMatch_FallbackWithoutModel(t *testing.T) {
	deps := screens.Deps{Advisor: jobmatch.NewAdvisor(nil, jobmatch.DefaultConfig())}
	s := New(deps, testResult())
	analyze(t, s)

	if s.result == nil || s.result.MatchLevel != jobmatch.MatchMedium {
		t.Fatalf("result = %+v", s.result)
	}
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}

	s.Update(keyPress('n'))
	if s.result != nil || s.input.Value() != "" {
		t.Error("expected a fresh posting form")
	}
}

func TestJobMatch_FailureKeepsPosting(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("not json at all")},
		llm.MockResponse{Content: json.RawMessage(`{"matchLevel":"low","matchDescription":"Gap","advice":"Study"}`)},
	)
	deps := screens.Deps{Advisor: jobmatch.NewAdvisor(mock, jobmatch.DefaultConfig())}
	s := New(deps, testResult())

	analyze(t, s)
	if !s.failed || s.result != nil {
		t.Fatalf("failed = %v result = %+v", s.failed, s.result)
	}
	if s.input.Value() == "" {
		t.Fatal("posting should survive a failed analysis")
	}

	analyze(t, s)
	if s.failed || s.result == nil || s.result.MatchLevel != jobmatch.MatchLow {
		t.Fatalf("retry: failed = %v result = %+v", s.failed, s.result)
	}
}

func TestJobMatch_EmptyPostingIgnored(t *testing.T) {
	deps := screens.Deps{Advisor: jobmatch.NewAdvisor(nil, jobmatch.DefaultConfig())}
	s := New(deps, testResult())
	if _, cmd := s.Update(ctrlKey('s')); cmd != nil || s.running {
		t.Error("empty posting should not start an analysis")
	}
}
