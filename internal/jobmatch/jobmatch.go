// Package jobmatch compares a finished diagnosis against a job posting.
// With a model provider configured it asks the model for a verdict;
// without one it answers from fixed score bands.
package jobmatch

import (
	"errors"
	"fmt"

	"github.com/abhisek/bizpro/internal/diagnosis"
)

type MatchLevel string

const (
	MatchHigh     MatchLevel = "high"
	MatchMedium   MatchLevel = "medium"
	MatchLow      MatchLevel = "low"
	MatchNotReady MatchLevel = "not_ready"
)

func (m MatchLevel) Valid() bool {
	switch m {
	case MatchHigh, MatchMedium, MatchLow, MatchNotReady:
		return true
	}
	return false
}

// Request is the body of a job-match call.
type Request struct {
	JobDescription string             `json:"jobDescription" validate:"required,max=20000"`
	UserProfile    diagnosis.Snapshot `json:"userProfile"`
}

// Result is the advisor's verdict.
type Result struct {
	MatchLevel            MatchLevel `json:"matchLevel"`
	MatchDescription      string     `json:"matchDescription"`
	MatchingPoints        []string   `json:"matchingPoints"`
	GapPoints             []string   `json:"gapPoints"`
	Advice                string     `json:"advice"`
	EstimatedToeicRange   string     `json:"estimatedToeicRange"`
	RequiredToeicEstimate string     `json:"requiredToeicEstimate"`
}

var (
	// ErrAnalysisFailed matches every UpstreamError and ParseError.
	ErrAnalysisFailed = errors.New("failed to analyze job match")

	ErrEmptyJobDescription = errors.New("job description is empty")
)

// UpstreamError wraps a provider failure: timeout, outage, rejected key.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("job match upstream: %v", e.Err)
}

func (e *UpstreamError) Unwrap() []error { return []error{ErrAnalysisFailed, e.Err} }

// ParseError means the model replied but no usable verdict could be read
// from the reply.
type ParseError struct {
	Reason string
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("job match reply: %s: %v", e.Reason, e.Err)
	}
	return "job match reply: " + e.Reason
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAnalysisFailed}
	}
	return []error{ErrAnalysisFailed, e.Err}
}
