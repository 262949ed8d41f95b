// Package api serves the diagnosis over HTTP with gin. Sessions live in
// the session service; the stateless endpoints score a full answer set
// or run a job match without storing anything.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/bizpro/internal/jobmatch"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/session"
)

type Options struct {
	Sessions *session.Service
	// Advisor answers job-match requests. Nil uses the score-band fallback.
	Advisor *jobmatch.Advisor
	Logger  *slog.Logger
}

type Server struct {
	sessions  *session.Service
	advisor   *jobmatch.Advisor
	validator *profile.Validator
	logger    *slog.Logger
}

func New(opts Options) *Server {
	s := &Server{
		sessions:  opts.Sessions,
		advisor:   opts.Advisor,
		validator: profile.NewValidator(),
		logger:    opts.Logger,
	}
	if s.sessions == nil {
		s.sessions = session.NewService(session.Options{Logger: opts.Logger})
	}
	if s.advisor == nil {
		s.advisor = jobmatch.NewAdvisor(nil, jobmatch.DefaultConfig())
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "api")
	return s
}

// Handler returns the gin engine with every route mounted.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), s.requestLogger(), gin.Recovery())
	s.SetupRoutes(router)
	return router
}

// SetupRoutes mounts the API on router.
func (s *Server) SetupRoutes(router *gin.Engine) {
	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/presets", s.listPresets)
		v1.POST("/score", s.score)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", s.startSession)
			sessions.GET("/:id", s.getSession)
			sessions.DELETE("/:id", s.deleteSession)
			sessions.POST("/:id/answers", s.answer)
			sessions.POST("/:id/writing", s.submitWriting)
			sessions.POST("/:id/finish", s.finish)
			sessions.GET("/:id/result", s.result)
			sessions.GET("/:id/report.xlsx", s.reportXLSX)
		}
	}

	router.POST("/api/job-match", s.jobMatch)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"jobMatch": s.advisor.Live(),
	})
}
