// Package quiz runs a started session: the multiple-choice questions,
// then the writing tasks, then hands the diagnosis to the results screen.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/router"
	"github.com/abhisek/bizpro/internal/screen"
	"github.com/abhisek/bizpro/internal/screens"
	"github.com/abhisek/bizpro/internal/session"
	"github.com/abhisek/bizpro/internal/ui/components"
	"github.com/abhisek/bizpro/internal/ui/layout"
	"github.com/abhisek/bizpro/internal/ui/theme"
)

const writingLimit = 4000

// QuizScreen implements screen.Screen for an active session.
type QuizScreen struct {
	deps screens.Deps
	sess *session.Session
	// next builds the results screen.
	next func(*diagnosis.Result) screen.Screen

	choice  components.Choice
	writing components.TextArea
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

func New(deps screens.Deps, sess *session.Session, next func(*diagnosis.Result) screen.Screen) *QuizScreen {
	s := &QuizScreen{deps: deps, next: next}
	s.load(sess)
	return s
}

// load adopts a fresh copy of the session and resets the inputs for its
// current step.
func (s *QuizScreen) load(sess *session.Session) {
	s.sess = sess
	if q := sess.CurrentQuestion(); q != nil {
		s.choice = components.NewChoice(q.Choices)
	}
	if sess.CurrentPrompt() != nil {
		s.writing = components.NewTextArea("Write your answer in English...", writingLimit)
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.sess.Phase() == session.PhaseWriting {
		// A resumed session may have every task done but no result yet.
		if s.sess.CurrentPrompt() == nil {
			s.busy = true
			return s.finish()
		}
		return s.writing.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	if s.sess.Phase() == session.PhaseWriting {
		return "Writing"
	}
	return "Questions"
}

func (s *QuizScreen) Status() string {
	p := s.sess.Progress()
	if s.sess.Phase() == session.PhaseWriting {
		return fmt.Sprintf("Task %d/%d  %d%%  ", min(p.WritingDone+1, p.WritingTotal), p.WritingTotal, p.Percent)
	}
	return fmt.Sprintf("Q %d/%d  %d%%  ", min(p.Answered+1, p.Questions), p.Questions, p.Percent)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.sess.Phase() == session.PhaseWriting {
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Ctrl+N", Description: "Skip task"},
			{Key: "Ctrl+F", Description: "Finish now"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter/A-D", Description: "Answer"},
		{Key: "S", Description: "Skip"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answeredMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.choice.Done = false
			return s, nil
		}
		s.errMsg = ""
		s.load(msg.sess)
		if s.sess.Phase() == session.PhaseWriting && s.sess.CurrentPrompt() == nil {
			return s, s.finish()
		}
		return s, s.Init()

	case finishedMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		results := s.next(msg.result)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
	}

	if s.busy {
		return s, nil
	}
	if s.sess.Phase() == session.PhaseWriting {
		return s.updateWriting(msg)
	}
	return s.updateQuestion(msg)
}

func (s *QuizScreen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q := s.sess.CurrentQuestion()
	if q == nil {
		return s, nil
	}
	s.choice, _ = s.choice.Update(msg)
	if !s.choice.Done {
		return s, nil
	}
	s.busy = true
	return s, s.answer(q.ID, s.choice.Chosen)
}

func (s *QuizScreen) updateWriting(msg tea.Msg) (screen.Screen, tea.Cmd) {
	wp := s.sess.CurrentPrompt()
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && wp != nil {
		switch kmsg.String() {
		case "ctrl+s":
			s.busy = true
			return s, s.submit(wp.ID, s.writing.Value())
		case "ctrl+n":
			s.busy = true
			return s, s.submit(wp.ID, "")
		case "ctrl+f":
			s.busy = true
			return s, s.finish()
		}
	}
	var cmd tea.Cmd
	s.writing, cmd = s.writing.Update(msg)
	return s, cmd
}

func (s *QuizScreen) answer(questionID string, choice int) tea.Cmd {
	id := s.sess.ID
	return func() tea.Msg {
		sess, _, err := s.deps.Sessions.Answer(context.Background(), id, questionID, choice)
		return answeredMsg{sess: sess, err: err}
	}
}

func (s *QuizScreen) submit(promptID, text string) tea.Cmd {
	id := s.sess.ID
	return func() tea.Msg {
		sess, err := s.deps.Sessions.SubmitWriting(context.Background(), id, promptID, text)
		return answeredMsg{sess: sess, err: err}
	}
}

func (s *QuizScreen) finish() tea.Cmd {
	id := s.sess.ID
	return func() tea.Msg {
		res, err := s.deps.Sessions.Finish(context.Background(), id)
		return finishedMsg{result: res, err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch {
	case s.sess.CurrentQuestion() != nil:
		body = s.renderQuestion(s.sess.CurrentQuestion(), cw)
	case s.sess.CurrentPrompt() != nil:
		body = s.renderPrompt(s.sess.CurrentPrompt(), cw)
	default:
		body = theme.Hint.Render("Scoring your answers...")
	}

	p := s.sess.Progress()
	bar := components.NewProgressBar("", float64(p.Percent)/100, true, cw)

	var b strings.Builder
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(components.Panel(body, cw))
	b.WriteString("\n" + theme.Hint.Render("Resume later: bizpro take --resume "+s.sess.ID))
	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render(s.errMsg))
	}
	return components.Center(b.String(), width, height)
}

func (s *QuizScreen) renderQuestion(q *bank.QuestionItem, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s",
		s.sess.Preset.CategoryLabel(q.Category), q.Difficulty)))
	b.WriteString("\n\n")
	if q.Context != "" {
		b.WriteString(theme.Hint.Width(cw - 4).Render(q.Context))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 4).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View(cw - 4))
	return b.String()
}

func (s *QuizScreen) renderPrompt(wp *bank.WritingPrompt, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw - 4).Render(wp.Scenario))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 4).Render(wp.Instruction))
	b.WriteString("\n")
	for _, c := range wp.Criteria {
		b.WriteString(theme.Hint.Render("  • " + c))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.writing.View(cw - 4))
	return b.String()
}
