package jobmatch

import (
	"fmt"

	"github.com/abhisek/bizpro/internal/diagnosis"
)

const maxPoints = 3

// Fallback builds a verdict from the overall score alone. It is what the
// advisor returns when no model provider is configured.
func Fallback(s diagnosis.Snapshot) *Result {
	score := s.OverallScore

	var level MatchLevel
	var desc string
	switch {
	case score >= 75:
		level, desc = MatchHigh, "Your English meets the posting's requirements well."
	case score >= 55:
		level, desc = MatchMedium, "Basic requirements are met, some reinforcement needed."
	case score >= 40:
		level, desc = MatchLow, "Meeting the requirements may be difficult right now."
	default:
		level, desc = MatchNotReady, "Strengthening English fundamentals is needed first."
	}

	toeic := "500-600"
	switch {
	case score >= 75:
		toeic = "750-850"
	case score >= 55:
		toeic = "600-700"
	}

	return &Result{
		MatchLevel:       level,
		MatchDescription: desc,
		MatchingPoints:   head(s.Strengths, maxPoints),
		GapPoints:        head(s.Weaknesses, maxPoints),
		Advice: fmt.Sprintf(
			"Work on %s while considering applying in parallel. In interviews, highlight %s.",
			firstOr(s.Weaknesses, "business English"), firstOr(s.Strengths, "your strengths"),
		),
		EstimatedToeicRange:   toeic,
		RequiredToeicEstimate: "700+ (estimated)",
	}
}

func head(xs []string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < len(xs) && i < n; i++ {
		out = append(out, xs[i])
	}
	return out
}

func firstOr(xs []string, def string) string {
	if len(xs) > 0 && xs[0] != "" {
		return xs[0]
	}
	return def
}
