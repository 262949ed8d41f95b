package classify

import (
	"testing"

	"github.com/abhisek/bizpro/internal/scoring"
)

func TestLevel_Gated(t *testing.T) {
	tests := []struct {
		overall int
		ratio   float64
		want    BusinessLevel
	}{
		{90, 0.8, LevelExecutive},
		{85, 0.7, LevelExecutive},
		{90, 0.6, LevelAdvanced},
		{70, 0.5, LevelAdvanced},
		{84, 0.9, LevelAdvanced},
		{80, 0.4, LevelIntermediate},
		{50, 0, LevelIntermediate},
		{45, 1, LevelEntry},
		{45, 0, LevelEntry},
		{0, 0, LevelEntry},
	}
	for _, tt := range tests {
		if got := Level(LadderGated, tt.overall, tt.ratio); got != tt.want {
			t.Errorf("Level(gated, %d, %v) = %s, want %s", tt.overall, tt.ratio, got, tt.want)
		}
	}
}

func TestLevel_ScoreOnly(t *testing.T) {
	tests := []struct {
		overall int
		want    BusinessLevel
	}{
		{100, LevelExecutive}, {85, LevelExecutive}, {84, LevelAdvanced},
		{70, LevelAdvanced}, {69, LevelIntermediate}, {50, LevelIntermediate}, {49, LevelEntry},
	}
	for _, tt := range tests {
		if got := Level(LadderScoreOnly, tt.overall, 0); got != tt.want {
			t.Errorf("Level(score-only, %d) = %s, want %s", tt.overall, got, tt.want)
		}
	}
}

func rank(l BusinessLevel) int {
	for i, x := range Levels() {
		if x == l {
			return i
		}
	}
	return -1
}

func TestLevel_Monotonic(t *testing.T) {
	ratios := []float64{0, 0.3, 0.5, 0.69, 0.7, 1}
	for _, r := range ratios {
		prev := -1
		for o := 0; o <= 100; o++ {
			cur := rank(Level(LadderGated, o, r))
			if cur < prev {
				t.Fatalf("level decreased at overall=%d ratio=%v", o, r)
			}
			prev = cur
		}
	}
	for o := 0; o <= 100; o += 5 {
		prev := -1
		for _, r := range ratios {
			cur := rank(Level(LadderGated, o, r))
			if cur < prev {
				t.Fatalf("level decreased at overall=%d ratio=%v", o, r)
			}
			prev = cur
		}
	}
}

func TestReadinessTier(t *testing.T) {
	tests := []struct {
		overall int
		avg     float64
		want    ReadinessLevel
	}{
		{80, 75, ReadinessConfident},
		{95, 74.5, ReadinessReady},
		{72, 60, ReadinessReady},
		{60, 55, ReadinessReady},
		{70, 54, ReadinessBasic},
		{40, 0, ReadinessBasic},
		{39, 100, ReadinessNotReady},
	}
	for _, tt := range tests {
		if got := ReadinessTier(tt.overall, tt.avg); got != tt.want {
			t.Errorf("ReadinessTier(%d, %v) = %s, want %s", tt.overall, tt.avg, got, tt.want)
		}
	}
}

func TestReadinessTable_Assess(t *testing.T) {
	table := ReadinessTable{
		ReadinessReady: {Description: "ready", Tips: []string{"a", "b", "c"}},
	}
	r := table.Assess(72, 60)
	if r.Level != ReadinessReady || r.Description != "ready" || len(r.Tips) != 3 {
		t.Fatalf("unexpected readiness %+v", r)
	}
	r.Tips[0] = "changed"
	if table[ReadinessReady].Tips[0] != "a" {
		t.Error("Assess returned shared tips")
	}
}

func TestAvgCommunication(t *testing.T) {
	s := scoring.Scores{{"reading", 71}, {"situationJudgment", 80}}
	if got := AvgCommunication(s, []string{"reading", "situationJudgment"}); got != 75.5 {
		t.Errorf("got %v, want 75.5", got)
	}
	if got := AvgCommunication(s, nil); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

var labels = []TraitLabel{
	{"vocabulary", "Vocab strong", "Vocab weak"},
	{"reading", "Reading strong", "Reading weak"},
	{"situationJudgment", "Judgment strong", "Judgment weak"},
}

var sentinels = Sentinels{NoStrengths: "foundational", NoWeaknesses: "none"}

func TestStrengthsWeaknesses(t *testing.T) {
	tr := StrengthsWeaknesses(labels, sentinels, scoring.Scores{{"vocabulary", 70}, {"reading", 69}, {"situationJudgment", 90}})
	if len(tr.Strengths) != 2 || tr.Strengths[0] != "Vocab strong" || tr.Strengths[1] != "Judgment strong" {
		t.Errorf("strengths = %v", tr.Strengths)
	}
	if len(tr.Weaknesses) != 1 || tr.Weaknesses[0] != "Reading weak" {
		t.Errorf("weaknesses = %v", tr.Weaknesses)
	}
	if len(tr.WeakKeys) != 1 || tr.WeakKeys[0] != "reading" {
		t.Errorf("weak keys = %v", tr.WeakKeys)
	}
}

func TestStrengthsWeaknesses_Sentinels(t *testing.T) {
	all := StrengthsWeaknesses(labels, sentinels, scoring.Scores{{"vocabulary", 100}, {"reading", 70}, {"situationJudgment", 80}, {"advancedSkills", 0}})
	if len(all.Weaknesses) != 1 || all.Weaknesses[0] != "none" {
		t.Errorf("weaknesses = %v, want [none]", all.Weaknesses)
	}
	if len(all.WeakKeys) != 0 || len(all.WeakLabels) != 0 {
		t.Errorf("sentinel leaked into weak keys: %v %v", all.WeakKeys, all.WeakLabels)
	}

	none := StrengthsWeaknesses(labels, sentinels, nil)
	if len(none.Strengths) != 1 || none.Strengths[0] != "foundational" {
		t.Errorf("strengths = %v, want [foundational]", none.Strengths)
	}
	if len(none.Weaknesses) != 3 {
		t.Errorf("got %d weaknesses, want 3", len(none.Weaknesses))
	}
}

func TestDescriptions(t *testing.T) {
	for _, l := range Levels() {
		if l.Description() == "" {
			t.Errorf("%s has no description", l)
		}
	}
}
