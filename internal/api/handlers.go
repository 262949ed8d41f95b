package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/report"
	"github.com/abhisek/bizpro/internal/session"
)

type startRequest struct {
	Preset  string          `json:"preset"`
	Profile profile.Profile `json:"profile"`
}

type answerRequest struct {
	QuestionID string `json:"questionId" validate:"required"`
	// Choice is the zero-based option index, or -1 to skip.
	Choice *int `json:"choice" validate:"required,min=-1"`
}

type writingRequest struct {
	PromptID string `json:"promptId" validate:"required"`
	Text     string `json:"text" validate:"max=10000"`
}

type scoreRequest struct {
	Preset  string                    `json:"preset"`
	Profile profile.Profile           `json:"profile"`
	Answers []answerRequest           `json:"answers" validate:"required,min=1,dive"`
	Writing []answers.WritingResponse `json:"writing"`
}

// bind decodes the JSON body into req and checks its validate tags.
// It writes the 400 response itself and reports whether to continue.
func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
			Code:    "invalid_request",
		})
		return false
	}
	if err := s.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: profile.FormatError(err).Error(),
			Code:    "invalid_request",
		})
		return false
	}
	return true
}

// fail maps a domain error to its status code and writes it.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, session.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, preset.ErrUnknownPreset),
		errors.Is(err, answers.ErrUnknownQuestion),
		errors.Is(err, answers.ErrChoiceOutOfRange),
		errors.Is(err, session.ErrUnknownPrompt):
		status, code = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, session.ErrWrongPhase),
		errors.Is(err, session.ErrFinished),
		errors.Is(err, session.ErrPromptAnswered),
		errors.Is(err, answers.ErrAlreadyAnswered),
		errors.Is(err, answers.ErrOutOfOrder),
		errors.Is(err, answers.ErrCommitted),
		errors.Is(err, answers.ErrIncomplete):
		status, code = http.StatusConflict, "conflict"
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(), "error", err)
		msg = "Internal server error"
	}
	c.JSON(status, ErrorResponse{Message: msg, Code: code})
}

func (s *Server) listPresets(c *gin.Context) {
	var out []presetView
	for _, name := range preset.Names() {
		p := preset.MustGet(name)
		v := presetView{Name: p.Name, Title: p.Title, Questions: p.Plan().Total()}
		for _, cat := range p.Categories {
			v.Categories = append(v.Categories, cat.Label)
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

func (s *Server) startSession(c *gin.Context) {
	var req startRequest
	if !s.bind(c, &req) {
		return
	}
	sess, err := s.sessions.Start(c.Request.Context(), req.Preset, req.Profile)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionView(sess))
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(sess))
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) answer(c *gin.Context) {
	var req answerRequest
	if !s.bind(c, &req) {
		return
	}
	sess, _, err := s.sessions.Answer(c.Request.Context(), c.Param("id"), req.QuestionID, *req.Choice)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(sess))
}

func (s *Server) submitWriting(c *gin.Context) {
	var req writingRequest
	if !s.bind(c, &req) {
		return
	}
	sess, err := s.sessions.SubmitWriting(c.Request.Context(), c.Param("id"), req.PromptID, req.Text)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionView(sess))
}

func (s *Server) finish(c *gin.Context) {
	res, err := s.sessions.Finish(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// finished loads a session and insists it has a result.
func (s *Server) finished(c *gin.Context) (*session.Session, bool) {
	sess, err := s.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	if sess.Result == nil {
		s.fail(c, fmt.Errorf("%w: %s", session.ErrWrongPhase, sess.Phase()))
		return nil, false
	}
	return sess, true
}

func (s *Server) result(c *gin.Context) {
	sess, ok := s.finished(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Result)
}

func (s *Server) reportXLSX(c *gin.Context) {
	sess, ok := s.finished(c)
	if !ok {
		return
	}
	data, err := report.WriteXLSX(sess.Result)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="bizpro-%s.xlsx"`, sess.ID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// score diagnoses a complete answer set in one call. Answers may come in
// any order; each must name a distinct question of the preset's bank.
func (s *Server) score(c *gin.Context) {
	var req scoreRequest
	if !s.bind(c, &req) {
		return
	}
	if req.Preset == "" {
		req.Preset = preset.Default
	}
	p, b, err := s.sessions.Catalog().Resolve(req.Preset)
	if err != nil {
		s.fail(c, err)
		return
	}

	test := &bank.SampledTest{Preset: p.Name}
	seen := make(map[string]bool, len(req.Answers))
	for _, a := range req.Answers {
		q := b.Item(a.QuestionID)
		if q == nil {
			s.fail(c, fmt.Errorf("%w: %s", answers.ErrUnknownQuestion, a.QuestionID))
			return
		}
		if seen[q.ID] {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "question " + q.ID + " answered twice",
				Code:    "invalid_request",
			})
			return
		}
		seen[q.ID] = true
		test.Items = append(test.Items, q)
	}

	rec := answers.NewRecorder(test)
	for _, a := range req.Answers {
		if _, err := rec.Record(a.QuestionID, *a.Choice); err != nil {
			s.fail(c, err)
			return
		}
	}
	records, err := rec.Commit()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, diagnosis.Diagnose(p, req.Profile, records, req.Writing))
}
