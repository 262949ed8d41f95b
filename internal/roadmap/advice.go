package roadmap

import (
	"slices"

	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/scoring"
)

// Facts is everything a recommendation rule may look at.
type Facts struct {
	Profile  profile.Profile
	Level    classify.BusinessLevel
	Scores   scoring.Scores
	WeakKeys []string
}

// Condition decides whether a rule fires.
type Condition interface {
	Holds(f Facts) bool
}

// ScoreBelow holds when the sub-score Key is below Threshold.
type ScoreBelow struct {
	Key       string
	Threshold int
}

func (c ScoreBelow) Holds(f Facts) bool {
	return f.Scores.Value(c.Key) < c.Threshold
}

// GoalIs holds when the profile goal matches.
type GoalIs profile.Goal

func (c GoalIs) Holds(f Facts) bool {
	return f.Profile.Goal == profile.Goal(c)
}

// UsageIncludes holds when the profile lists the usage.
type UsageIncludes profile.Usage

func (c UsageIncludes) Holds(f Facts) bool {
	return f.Profile.Uses(profile.Usage(c))
}

// WeakIn holds when any of the listed sub-scores is a weakness.
type WeakIn []string

func (c WeakIn) Holds(f Facts) bool {
	for _, k := range c {
		if slices.Contains(f.WeakKeys, k) {
			return true
		}
	}
	return false
}

// Rule appends Advice when When holds.
type Rule struct {
	When   Condition
	Advice string
}

// Rules is an ordered rule list with the advice used when nothing fires.
type Rules struct {
	List     []Rule
	Fallback string
}

// Recommendations evaluates every rule in declaration order.
func Recommendations(rules Rules, f Facts) []string {
	var out []string
	for _, r := range rules.List {
		if r.When.Holds(f) {
			out = append(out, r.Advice)
		}
	}
	if len(out) == 0 && rules.Fallback != "" {
		out = []string{rules.Fallback}
	}
	return out
}
