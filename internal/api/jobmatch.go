package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/profile"
)

const jobMatchFailed = "Failed to analyze job match"

// jobMatchResponse is the envelope of POST /api/job-match.
type jobMatchResponse struct {
	Success bool             `json:"success"`
	Result  *jobmatch.Result `json:"result,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func (s *Server) jobMatch(c *gin.Context) {
	var req jobmatch.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, jobMatchResponse{Error: "Invalid request payload"})
		return
	}
	if err := s.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, jobMatchResponse{Error: profile.FormatError(err).Error()})
		return
	}

	res, err := s.advisor.Analyze(c.Request.Context(), req)
	switch {
	case errors.Is(err, jobmatch.ErrEmptyJobDescription):
		c.JSON(http.StatusBadRequest, jobMatchResponse{Error: err.Error()})
		return
	case err != nil:
		s.logger.WarnContext(c.Request.Context(), "job match failed", "error", err)
		c.JSON(http.StatusInternalServerError, jobMatchResponse{Error: jobMatchFailed})
		return
	}
	c.JSON(http.StatusOK, jobMatchResponse{Success: true, Result: res})
}
