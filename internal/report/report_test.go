package report

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/profile"
)

func testResult(t *testing.T, pick func(*bank.QuestionItem) int) *diagnosis.Result {
	t.Helper()
	p := preset.MustGet(preset.Default)
	b, err := p.LoadBank()
	require.NoError(t, err)
	test, err := b.Sample(rand.New(rand.NewPCG(3, 5)), p.Plan())
	require.NoError(t, err)

	rec := answers.NewRecorder(test)
	for q := rec.Next(); q != nil; q = rec.Next() {
		_, err := rec.Record(q.ID, pick(q))
		require.NoError(t, err)
	}
	records, err := rec.Commit()
	require.NoError(t, err)

	prof := profile.Profile{
		JobType:      profile.JobSales,
		EnglishUsage: []profile.Usage{profile.UsageEmail, profile.UsageInterview},
		Goal:         profile.GoalJobChange,
		CurrentLevel: profile.LevelIntermediate,
	}
	return diagnosis.Diagnose(p, prof, records, nil)
}

func correct(q *bank.QuestionItem) int { return q.CorrectIndex }
func skip(*bank.QuestionItem) int      { return answers.SkipIndex }

func TestRenderText_Perfect(t *testing.T) {
	r := testResult(t, correct)
	out := RenderText(r, 80)

	assert.Contains(t, out, "Business English Diagnosis")
	assert.Contains(t, out, "Executive Level")
	assert.Contains(t, out, "100/100")
	assert.Contains(t, out, "VOCABULARY")
	assert.Contains(t, out, "Interview readiness: Confident")
	for _, svc := range r.RecommendedServices {
		assert.Contains(t, out, svc.Name)
	}
}

func TestRenderText_AllSkipped(t *testing.T) {
	r := testResult(t, skip)
	out := RenderText(r, 0)

	assert.Contains(t, out, "Entry Level")
	assert.Contains(t, out, "0/100")
	assert.Contains(t, out, "Not ready")
}

func TestWriteXLSX(t *testing.T) {
	r := testResult(t, correct)
	data, err := WriteXLSX(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetSkills, SheetRoadmap, SheetServices}, f.GetSheetList())

	level, err := f.GetCellValue(SheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Executive Level", level)
	overall, err := f.GetCellValue(SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "100", overall)

	skills, err := f.GetRows(SheetSkills)
	require.NoError(t, err)
	require.Len(t, skills, len(r.SkillScores)+1)
	assert.Equal(t, []string{"Skill", "Key", "Score"}, skills[0])
	assert.Equal(t, r.SkillScores[0].Key, skills[1][1])

	phases, err := f.GetRows(SheetRoadmap)
	require.NoError(t, err)
	assert.Len(t, phases, len(r.Roadmap)+1)

	services, err := f.GetRows(SheetServices)
	require.NoError(t, err)
	require.Len(t, services, len(r.RecommendedServices)+1)
	assert.Equal(t, r.RecommendedServices[0].Name, services[1][1])
}
