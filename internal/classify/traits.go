package classify

import "github.com/abhisek/bizpro/internal/scoring"

// StrengthThreshold is the minimum sub-score counted as a strength.
const StrengthThreshold = 70

// TraitLabel gives the strength and weakness wording for one sub-score.
type TraitLabel struct {
	Key      string
	Strength string
	Weakness string
}

// Sentinels replace an empty strengths or weaknesses list.
type Sentinels struct {
	NoStrengths  string
	NoWeaknesses string
}

// Traits is the outcome of strengths/weaknesses classification.
type Traits struct {
	Strengths  []string
	Weaknesses []string
	// WeakKeys and WeakLabels hold the sub-scores below the threshold in
	// label order. Both are empty when Weaknesses is the sentinel.
	WeakKeys   []string
	WeakLabels []string
}

// StrengthsWeaknesses classifies each labelled sub-score as a strength
// (>= StrengthThreshold) or a weakness. An empty side is replaced by its
// sentinel so neither list is ever empty.
func StrengthsWeaknesses(labels []TraitLabel, sentinels Sentinels, scores scoring.Scores) Traits {
	var t Traits
	for _, l := range labels {
		if scores.Value(l.Key) >= StrengthThreshold {
			t.Strengths = append(t.Strengths, l.Strength)
		} else {
			t.Weaknesses = append(t.Weaknesses, l.Weakness)
			t.WeakKeys = append(t.WeakKeys, l.Key)
			t.WeakLabels = append(t.WeakLabels, l.Weakness)
		}
	}
	if len(t.Strengths) == 0 {
		t.Strengths = []string{sentinels.NoStrengths}
	}
	if len(t.Weaknesses) == 0 {
		t.Weaknesses = []string{sentinels.NoWeaknesses}
	}
	return t
}
