// Package scoring turns a completed answer set into a skill profile.
// Scoring is a pure function of the records and the configuration.
package scoring

import (
	"math"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/bank"
)

// CategoryScore maps a bank category to the sub-score key it produces.
type CategoryScore struct {
	Category bank.Category
	Key      string
}

// AdvancedAxis configures the extra sub-score derived from correct
// advanced-tier answers across all categories.
type AdvancedAxis struct {
	Key string
	// Divisor is the number of advanced-tier questions in the bank
	// composition. It is a fixed constant, not derived from the records.
	Divisor int
}

// Config describes which sub-scores to compute.
type Config struct {
	Categories []CategoryScore
	Advanced   *AdvancedAxis
}

// Tally is the per-category answer count.
type Tally struct {
	Correct         int `json:"correct"`
	Total           int `json:"total"`
	BasicCorrect    int `json:"basicCorrect"`
	AdvancedCorrect int `json:"advancedCorrect"`
}

// Profile is the scored outcome of one test.
type Profile struct {
	Scores        Scores                  `json:"skillScores"`
	Overall       int                     `json:"overallScore"`
	AdvancedRatio float64                 `json:"advancedRatio"`
	Tallies       map[bank.Category]Tally `json:"tallies"`
}

// Engine scores answer sets for one configuration.
type Engine struct {
	cfg Config
}

// NewEngine returns an engine for cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Score computes the skill profile. It never fails: records for unknown
// categories are ignored and empty categories score zero.
//
// The overall score is the rounded mean of the already-rounded category
// percentages. The advanced axis is reported as a sub-score but is not
// part of the overall mean.
func (e *Engine) Score(records []answers.Record) Profile {
	tallies := make(map[bank.Category]Tally, len(e.cfg.Categories))
	for _, c := range e.cfg.Categories {
		tallies[c.Category] = Tally{}
	}

	for _, r := range records {
		t, ok := tallies[r.Category]
		if !ok {
			continue
		}
		t.Total++
		if r.IsCorrect {
			t.Correct++
			switch r.Difficulty {
			case bank.Basic:
				t.BasicCorrect++
			case bank.Advanced:
				t.AdvancedCorrect++
			}
		}
		tallies[r.Category] = t
	}

	p := Profile{Tallies: tallies}
	sum := 0
	advancedCorrect := 0
	for _, c := range e.cfg.Categories {
		t := tallies[c.Category]
		pct := Percent(t.Correct, max(t.Total, 1))
		p.Scores = append(p.Scores, Score{Key: c.Key, Value: pct})
		sum += pct
		advancedCorrect += t.AdvancedCorrect
	}
	if n := len(e.cfg.Categories); n > 0 {
		p.Overall = Round(float64(sum) / float64(n))
	}

	if ax := e.cfg.Advanced; ax != nil && ax.Divisor > 0 {
		p.AdvancedRatio = math.Min(float64(advancedCorrect)/float64(ax.Divisor), 1)
		p.Scores = append(p.Scores, Score{Key: ax.Key, Value: Round(100 * p.AdvancedRatio)})
	}
	return p
}

// Percent returns round(100*num/den), clamped to [0, 100].
func Percent(num, den int) int {
	if den <= 0 {
		return 0
	}
	return min(max(Round(100*float64(num)/float64(den)), 0), 100)
}

// Round rounds half up, matching the usual rounding of non-negative
// scores (2.5 rounds to 3).
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
