package diagnosis

import (
	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/scoring"
)

// SnapshotReadiness is the readiness subset sent to the job-match advisor.
type SnapshotReadiness struct {
	Level       classify.ReadinessLevel `json:"level" validate:"required,oneof=not_ready basic ready confident"`
	Description string                  `json:"description"`
}

// Snapshot is the subset of a result the job-match advisor sees.
type Snapshot struct {
	BusinessLevel      classify.BusinessLevel `json:"businessLevel" validate:"required,oneof=entry intermediate advanced executive"`
	OverallScore       int                    `json:"overallScore" validate:"min=0,max=100"`
	SkillScores        scoring.Scores         `json:"skillScores"`
	Strengths          []string               `json:"strengths"`
	Weaknesses         []string               `json:"weaknesses"`
	InterviewReadiness SnapshotReadiness      `json:"interviewReadiness"`
}

// Snapshot returns the job-match view of the result.
func (r *Result) Snapshot() Snapshot {
	return Snapshot{
		BusinessLevel:      r.BusinessLevel,
		OverallScore:       r.OverallScore,
		SkillScores:        append(scoring.Scores(nil), r.SkillScores...),
		Strengths:          append([]string(nil), r.Strengths...),
		Weaknesses:         append([]string(nil), r.Weaknesses...),
		InterviewReadiness: SnapshotReadiness{Level: r.InterviewReadiness.Level, Description: r.InterviewReadiness.Description},
	}
}
