// Package classify maps a skill profile to a business level, an interview
// readiness tier and a list of strengths and weaknesses. Every function is
// a pure lookup over fixed thresholds.
package classify

// BusinessLevel is the overall business-English tier.
type BusinessLevel string

const (
	LevelEntry        BusinessLevel = "entry"
	LevelIntermediate BusinessLevel = "intermediate"
	LevelAdvanced     BusinessLevel = "advanced"
	LevelExecutive    BusinessLevel = "executive"
)

// Levels returns all business levels, lowest first.
func Levels() []BusinessLevel {
	return []BusinessLevel{LevelEntry, LevelIntermediate, LevelAdvanced, LevelExecutive}
}

var levelDescriptions = map[BusinessLevel]string{
	LevelEntry:        "Entry Level - Can handle basic emails and simple conversations",
	LevelIntermediate: "Working Level - Can participate in meetings and give basic presentations",
	LevelAdvanced:     "Professional Level - Can negotiate and handle complex discussions",
	LevelExecutive:    "Executive Level - Can lead strategic discussions at management level",
}

// Description returns the fixed description of the level.
func (l BusinessLevel) Description() string {
	return levelDescriptions[l]
}

// Label returns the short name before the dash in the description.
func (l BusinessLevel) Label() string {
	switch l {
	case LevelEntry:
		return "Entry Level"
	case LevelIntermediate:
		return "Working Level"
	case LevelAdvanced:
		return "Professional Level"
	case LevelExecutive:
		return "Executive Level"
	}
	return string(l)
}

// Ladder selects how the business level is derived.
type Ladder string

const (
	// LadderScoreOnly uses the overall score alone.
	LadderScoreOnly Ladder = "score-only"
	// LadderGated also requires a minimum advanced ratio for the top two tiers.
	LadderGated Ladder = "score+advanced-ratio"
)

// Level classifies overall (0-100) and advancedRatio (0-1). The first
// matching rule wins, top down.
func Level(ladder Ladder, overall int, advancedRatio float64) BusinessLevel {
	if ladder == LadderGated {
		switch {
		case overall >= 85 && advancedRatio >= 0.7:
			return LevelExecutive
		case overall >= 70 && advancedRatio >= 0.5:
			return LevelAdvanced
		case overall >= 50:
			return LevelIntermediate
		default:
			return LevelEntry
		}
	}
	switch {
	case overall >= 85:
		return LevelExecutive
	case overall >= 70:
		return LevelAdvanced
	case overall >= 50:
		return LevelIntermediate
	default:
		return LevelEntry
	}
}
