// Package session holds the state of one in-progress diagnosis: the
// sampled test, the answers so far, writing responses and, once finished,
// the result. Sessions are ephemeral; a restart begins a new one.
package session

import (
	"errors"
	"time"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/scoring"
)

// Phase is where a session is in the flow questions → writing → complete.
type Phase string

const (
	PhaseQuestions Phase = "questions"
	PhaseWriting   Phase = "writing"
	PhaseComplete  Phase = "complete"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrWrongPhase     = errors.New("operation not allowed in this phase")
	ErrUnknownPrompt  = errors.New("writing prompt is not part of this test")
	ErrPromptAnswered = errors.New("writing prompt already answered")
	ErrFinished       = errors.New("session already finished")
)

type Session struct {
	ID        string
	Preset    *preset.Preset
	Profile   profile.Profile
	Test      *bank.SampledTest
	Recorder  *answers.Recorder
	Writing   []answers.WritingResponse
	Result    *diagnosis.Result
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Phase derives the phase from the recorded state.
func (s *Session) Phase() Phase {
	switch {
	case s.Result != nil:
		return PhaseComplete
	case !s.Recorder.Done():
		return PhaseQuestions
	default:
		return PhaseWriting
	}
}

// CurrentQuestion is the next unanswered question, or nil.
func (s *Session) CurrentQuestion() *bank.QuestionItem {
	if s.Result != nil {
		return nil
	}
	return s.Recorder.Next()
}

// CurrentPrompt is the first writing prompt without a response, or nil.
// It is only non-nil in the writing phase.
func (s *Session) CurrentPrompt() *bank.WritingPrompt {
	if s.Phase() != PhaseWriting {
		return nil
	}
	for _, p := range s.Test.Prompts {
		if !s.hasWriting(p.ID) {
			return p
		}
	}
	return nil
}

func (s *Session) hasWriting(promptID string) bool {
	for _, w := range s.Writing {
		if w.PromptID == promptID {
			return true
		}
	}
	return false
}

// Progress counts questions and writing tasks together.
type Progress struct {
	Answered     int `json:"answered"`
	Questions    int `json:"questions"`
	WritingDone  int `json:"writingDone"`
	WritingTotal int `json:"writingTotal"`
	Percent      int `json:"percent"`
}

func (s *Session) Progress() Progress {
	answered, total := s.Recorder.Progress()
	p := Progress{
		Answered:     answered,
		Questions:    total,
		WritingDone:  len(s.Writing),
		WritingTotal: len(s.Test.Prompts),
	}
	p.Percent = scoring.Percent(p.Answered+p.WritingDone, p.Questions+p.WritingTotal)
	return p
}
