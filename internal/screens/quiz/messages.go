package quiz

import (
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/session"
)

// answeredMsg is the session after an answer or writing submission.
type answeredMsg struct {
	sess *session.Session
	err  error
}

// finishedMsg carries the diagnosis once the session is finished.
type finishedMsg struct {
	result *diagnosis.Result
	err    error
}
