package api

import (
	"time"

	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/session"
)

// ErrorResponse is the error body of every /api/v1 endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

type questionView struct {
	ID            string   `json:"id"`
	Number        int      `json:"number"`
	Category      string   `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	Difficulty    string   `json:"difficulty"`
	Prompt        string   `json:"prompt"`
	Context       string   `json:"context,omitempty"`
	Choices       []string `json:"choices"`
}

type sessionView struct {
	ID        string              `json:"id"`
	Preset    string              `json:"preset"`
	Profile   profile.Profile     `json:"profile"`
	Phase     session.Phase       `json:"phase"`
	Progress  session.Progress    `json:"progress"`
	Question  *questionView       `json:"question,omitempty"`
	Prompt    *bank.WritingPrompt `json:"prompt,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// newSessionView never carries answer keys: questions are copied field
// by field and the correct index stays behind.
func newSessionView(sess *session.Session) sessionView {
	v := sessionView{
		ID:        sess.ID,
		Preset:    sess.Preset.Name,
		Profile:   sess.Profile,
		Phase:     sess.Phase(),
		Progress:  sess.Progress(),
		Prompt:    sess.CurrentPrompt(),
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	}
	if q := sess.CurrentQuestion(); q != nil {
		v.Question = &questionView{
			ID:            q.ID,
			Number:        sess.Test.Index(q.ID) + 1,
			Category:      string(q.Category),
			CategoryLabel: sess.Preset.CategoryLabel(q.Category),
			Difficulty:    string(q.Difficulty),
			Prompt:        q.Prompt,
			Context:       q.Context,
			Choices:       append([]string(nil), q.Choices...),
		}
	}
	return v
}

type presetView struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Questions  int      `json:"questions"`
	Categories []string `json:"categories"`
}
