// Package diagnosis assembles a DiagnosisResult from a committed answer
// set. It wires scoring, classification and roadmap generation for one
// preset so that every derived field comes from the same scores.
package diagnosis

import (
	"time"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/roadmap"
	"github.com/abhisek/bizpro/internal/scoring"
)

// Result is the complete, read-only diagnosis of one test.
type Result struct {
	Preset                   string                    `json:"preset"`
	Profile                  profile.Profile           `json:"profile"`
	BusinessLevel            classify.BusinessLevel    `json:"businessLevel"`
	BusinessLevelDescription string                    `json:"businessLevelDescription"`
	OverallScore             int                       `json:"overallScore"`
	SkillScores              scoring.Scores            `json:"skillScores"`
	AdvancedRatio            float64                   `json:"advancedRatio,omitempty"`
	Strengths                []string                  `json:"strengths"`
	Weaknesses               []string                  `json:"weaknesses"`
	InterviewReadiness       classify.Readiness        `json:"interviewReadiness"`
	Recommendations          []string                  `json:"recommendations"`
	Roadmap                  []roadmap.Phase           `json:"roadmap"`
	RecommendedServices      []roadmap.Service         `json:"recommendedServices"`
	WritingResponses         []answers.WritingResponse `json:"writingResponses,omitempty"`
	GeneratedAt              time.Time                 `json:"generatedAt"`
}

// Diagnoser runs the pipeline for one preset.
type Diagnoser struct {
	preset *preset.Preset
	engine *scoring.Engine
	now    func() time.Time
}

// New returns a diagnoser for p.
func New(p *preset.Preset) *Diagnoser {
	return &Diagnoser{
		preset: p,
		engine: scoring.NewEngine(p.ScoringConfig()),
		now:    time.Now,
	}
}

// Preset returns the diagnoser's preset.
func (d *Diagnoser) Preset() *preset.Preset { return d.preset }

// Diagnose scores records and derives every classification from the
// resulting profile. Writing responses are carried through unscored.
func (d *Diagnoser) Diagnose(prof profile.Profile, records []answers.Record, writing []answers.WritingResponse) *Result {
	p := d.preset
	sp := d.engine.Score(records)

	level := classify.Level(p.Ladder, sp.Overall, sp.AdvancedRatio)
	avgComm := classify.AvgCommunication(sp.Scores, p.CommKeys)
	traits := classify.StrengthsWeaknesses(p.TraitLabels(), p.Sentinels, sp.Scores)

	facts := roadmap.Facts{
		Profile:  prof,
		Level:    level,
		Scores:   sp.Scores,
		WeakKeys: traits.WeakKeys,
	}

	return &Result{
		Preset:                   p.Name,
		Profile:                  prof,
		BusinessLevel:            level,
		BusinessLevelDescription: level.Description(),
		OverallScore:             sp.Overall,
		SkillScores:              sp.Scores,
		AdvancedRatio:            sp.AdvancedRatio,
		Strengths:                traits.Strengths,
		Weaknesses:               traits.Weaknesses,
		InterviewReadiness:       p.Readiness.Assess(sp.Overall, avgComm),
		Recommendations:          roadmap.Recommendations(p.Rules, facts),
		Roadmap:                  roadmap.Build(p.Roadmaps, level, traits.WeakLabels),
		RecommendedServices:      roadmap.Services(p.Services, facts),
		WritingResponses:         append([]answers.WritingResponse(nil), writing...),
		GeneratedAt:              d.now().UTC(),
	}
}

// Diagnose is a convenience wrapper that builds a Diagnoser for p.
func Diagnose(p *preset.Preset, prof profile.Profile, records []answers.Record, writing []answers.WritingResponse) *Result {
	return New(p).Diagnose(prof, records, writing)
}
