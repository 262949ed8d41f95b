package diagnosis

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/profile"
)

func testProfile(goal profile.Goal, usage ...profile.Usage) profile.Profile {
	return profile.Profile{
		JobType:      profile.JobSales,
		EnglishUsage: usage,
		Goal:         goal,
		CurrentLevel: profile.LevelIntermediate,
	}
}

// answerAll samples the preset's test and answers each item with pick.
func answerAll(t *testing.T, p *preset.Preset, pick func(q *bank.QuestionItem) int) []answers.Record {
	t.Helper()
	b, err := p.LoadBank()
	if err != nil {
		t.Fatal(err)
	}
	test, err := b.Sample(rand.New(rand.NewPCG(11, 13)), p.Plan())
	if err != nil {
		t.Fatal(err)
	}
	rec := answers.NewRecorder(test)
	for q := rec.Next(); q != nil; q = rec.Next() {
		if _, err := rec.Record(q.ID, pick(q)); err != nil {
			t.Fatal(err)
		}
	}
	out, err := rec.Commit()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func correct(q *bank.QuestionItem) int { return q.CorrectIndex }
func skip(*bank.QuestionItem) int      { return answers.SkipIndex }

func TestDiagnose_CorePerfect(t *testing.T) {
	p := preset.MustGet("core")
	r := Diagnose(p, testProfile(profile.GoalSkillUp, profile.UsageEmail), answerAll(t, p, correct), nil)

	if r.OverallScore != 100 || r.BusinessLevel != classify.LevelExecutive {
		t.Errorf("overall=%d level=%s", r.OverallScore, r.BusinessLevel)
	}
	if got := r.SkillScores.Value("advancedSkills"); got != 100 {
		t.Errorf("advancedSkills = %d", got)
	}
	if len(r.Weaknesses) != 1 || r.Weaknesses[0] != "No major weaknesses identified" {
		t.Errorf("weaknesses = %v", r.Weaknesses)
	}
	if len(r.Strengths) != 3 {
		t.Errorf("strengths = %v", r.Strengths)
	}
	if r.InterviewReadiness.Level != classify.ReadinessConfident {
		t.Errorf("readiness = %s", r.InterviewReadiness.Level)
	}
	if len(r.Recommendations) != 1 || !strings.HasPrefix(r.Recommendations[0], "Continue practicing") {
		t.Errorf("recommendations = %v", r.Recommendations)
	}
	if len(r.RecommendedServices) != 1 || r.RecommendedServices[0].Rank != 1 {
		t.Errorf("services = %+v", r.RecommendedServices)
	}
	if len(r.Roadmap) != 1 || r.Roadmap[0].Title != "Continuous Excellence" {
		t.Errorf("roadmap = %+v", r.Roadmap)
	}
}

func TestDiagnose_CoreAllSkipped(t *testing.T) {
	p := preset.MustGet("core")
	prof := testProfile(profile.GoalJobChange, profile.UsageInterview)
	r := Diagnose(p, prof, answerAll(t, p, skip), nil)

	if r.OverallScore != 0 || r.BusinessLevel != classify.LevelEntry {
		t.Errorf("overall=%d level=%s", r.OverallScore, r.BusinessLevel)
	}
	if r.InterviewReadiness.Level != classify.ReadinessNotReady || len(r.InterviewReadiness.Tips) != 3 {
		t.Errorf("readiness = %+v", r.InterviewReadiness)
	}
	if len(r.Strengths) != 1 || r.Strengths[0] != "Foundational business English skills" {
		t.Errorf("strengths = %v", r.Strengths)
	}
	// Three low sub-scores, job change and interview usage all fire.
	if len(r.Recommendations) != 5 {
		t.Errorf("got %d recommendations: %v", len(r.Recommendations), r.Recommendations)
	}
	names := []string{}
	for _, s := range r.RecommendedServices {
		names = append(names, s.Name)
	}
	want := []string{"StudySapuri ENGLISH Business Course", "Bizmates", "Interview Practice Tool"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("services = %v, want %v", names, want)
	}
	if r.RecommendedServices[2].Rank != 3 {
		t.Errorf("interview tool rank = %d, want 3", r.RecommendedServices[2].Rank)
	}
}

func TestDiagnose_IntermediateRoadmapUsesWeaknesses(t *testing.T) {
	p := preset.MustGet("core")
	// Vocabulary perfect, reading perfect, situation all wrong:
	// (100+100+0)/3 = 67 -> intermediate under either ladder gate.
	pick := func(q *bank.QuestionItem) int {
		if q.Category == "situation" {
			return answers.SkipIndex
		}
		return q.CorrectIndex
	}
	r := Diagnose(p, testProfile(profile.GoalPromotion, profile.UsageMeeting), answerAll(t, p, pick), nil)
	if r.BusinessLevel != classify.LevelIntermediate {
		t.Fatalf("level = %s, want intermediate", r.BusinessLevel)
	}
	goals := r.Roadmap[0].Goals
	if len(goals) != 1 || goals[0] != "Improve situational judgment skills" {
		t.Errorf("phase 1 goals = %v", goals)
	}
	if r.RecommendedServices[1].Name != "Bizmates" {
		t.Errorf("expected speaking service for judgment weakness: %+v", r.RecommendedServices)
	}
}

func TestDiagnose_ClassicScoreOnlyLadder(t *testing.T) {
	p := preset.MustGet("classic")
	r := Diagnose(p, testProfile(profile.GoalOverseas, profile.UsageEmail), answerAll(t, p, correct), nil)
	if r.BusinessLevel != classify.LevelExecutive {
		t.Errorf("level = %s", r.BusinessLevel)
	}
	if len(r.SkillScores) != 4 {
		t.Errorf("got %d skill scores, want 4", len(r.SkillScores))
	}
	if _, ok := r.SkillScores.Get("advancedSkills"); ok {
		t.Error("classic has no advanced axis")
	}
}

func TestDiagnose_Deterministic(t *testing.T) {
	p := preset.MustGet("core")
	recs := answerAll(t, p, func(q *bank.QuestionItem) int {
		if q.Difficulty == bank.Advanced {
			return q.CorrectIndex
		}
		return (q.CorrectIndex + 1) % len(q.Choices)
	})
	d := New(p)
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return fixed }
	prof := testProfile(profile.GoalSkillUp, profile.UsageEmail)

	a, _ := json.Marshal(d.Diagnose(prof, recs, nil))
	b, _ := json.Marshal(d.Diagnose(prof, recs, nil))
	if string(a) != string(b) {
		t.Errorf("results differ:\n%s\n%s", a, b)
	}
}

func TestDiagnose_CarriesWriting(t *testing.T) {
	p := preset.MustGet("core")
	w := []answers.WritingResponse{{PromptID: "w1", Text: "Dear Mr. Johnson"}}
	r := Diagnose(p, testProfile(profile.GoalSkillUp, profile.UsageEmail), nil, w)
	if len(r.WritingResponses) != 1 || r.WritingResponses[0].Text != "Dear Mr. Johnson" {
		t.Errorf("writing = %+v", r.WritingResponses)
	}
}

func TestSnapshot(t *testing.T) {
	p := preset.MustGet("core")
	r := Diagnose(p, testProfile(profile.GoalSkillUp, profile.UsageEmail), answerAll(t, p, correct), nil)
	s := r.Snapshot()
	if s.OverallScore != r.OverallScore || s.BusinessLevel != r.BusinessLevel {
		t.Errorf("snapshot mismatch: %+v", s)
	}
	if s.InterviewReadiness.Description != r.InterviewReadiness.Description {
		t.Error("readiness description not copied")
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"skillScores":{"vocabulary":100`) {
		t.Errorf("unexpected snapshot JSON: %s", b)
	}
}
