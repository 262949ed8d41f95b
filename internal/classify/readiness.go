package classify

import "github.com/abhisek/bizpro/internal/scoring"

// ReadinessLevel is the interview-readiness tier.
type ReadinessLevel string

const (
	ReadinessNotReady  ReadinessLevel = "not_ready"
	ReadinessBasic     ReadinessLevel = "basic"
	ReadinessReady     ReadinessLevel = "ready"
	ReadinessConfident ReadinessLevel = "confident"
)

// Readiness is a readiness tier with its fixed description and tips.
type Readiness struct {
	Level       ReadinessLevel `json:"level"`
	Description string         `json:"description"`
	Tips        []string       `json:"tips"`
}

// ReadinessTable holds the description and tips for every tier.
type ReadinessTable map[ReadinessLevel]Readiness

// ReadinessTier classifies overall and the communication average.
func ReadinessTier(overall int, avgComm float64) ReadinessLevel {
	switch {
	case overall >= 80 && avgComm >= 75:
		return ReadinessConfident
	case overall >= 60 && avgComm >= 55:
		return ReadinessReady
	case overall >= 40:
		return ReadinessBasic
	default:
		return ReadinessNotReady
	}
}

// Assess returns the tier for the given scores, filled in from table.
// The returned tips are a copy.
func (t ReadinessTable) Assess(overall int, avgComm float64) Readiness {
	lvl := ReadinessTier(overall, avgComm)
	r := t[lvl]
	r.Level = lvl
	r.Tips = append([]string(nil), r.Tips...)
	return r
}

// AvgCommunication is the unrounded mean of the sub-scores named by keys.
// Missing keys count as zero.
func AvgCommunication(scores scoring.Scores, keys []string) float64 {
	if len(keys) == 0 {
		return 0
	}
	sum := 0
	for _, k := range keys {
		sum += scores.Value(k)
	}
	return float64(sum) / float64(len(keys))
}

// Label is the display name of the tier.
func (l ReadinessLevel) Label() string {
	switch l {
	case ReadinessConfident:
		return "Confident"
	case ReadinessReady:
		return "Ready"
	case ReadinessBasic:
		return "Basic"
	case ReadinessNotReady:
		return "Not ready"
	}
	return string(l)
}
