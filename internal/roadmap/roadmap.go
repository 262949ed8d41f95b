// Package roadmap builds the learning plan, advice and service suggestions
// that accompany a diagnosis.
package roadmap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/bizpro/internal/classify"
)

// Phase is one step of a learning roadmap.
type Phase struct {
	Phase    int      `json:"phase"`
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Goals    []string `json:"goals"`
}

// PhaseTemplate is the static definition of a phase. When WeaknessGoal is
// set, the goals are generated from the weaknesses instead of Goals.
type PhaseTemplate struct {
	Title    string
	Duration string
	Goals    []string
	// WeaknessGoal is a fmt format with one %s verb, applied to each
	// lower-cased weakness label.
	WeaknessGoal string
}

// Table maps each business level to its phases.
type Table map[classify.BusinessLevel][]PhaseTemplate

// Build returns the roadmap for level. weaknesses are the raw weakness
// labels (never the "no weaknesses" sentinel).
func Build(table Table, level classify.BusinessLevel, weaknesses []string) []Phase {
	tmpl := table[level]
	phases := make([]Phase, 0, len(tmpl))
	for i, pt := range tmpl {
		p := Phase{Phase: i + 1, Title: pt.Title, Duration: pt.Duration}
		if pt.WeaknessGoal != "" {
			p.Goals = make([]string, 0, len(weaknesses))
			for _, w := range weaknesses {
				p.Goals = append(p.Goals, fmt.Sprintf(pt.WeaknessGoal, strings.ToLower(w)))
			}
		} else {
			p.Goals = slices.Clone(pt.Goals)
		}
		phases = append(phases, p)
	}
	return phases
}
