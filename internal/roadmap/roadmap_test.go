package roadmap

import (
	"testing"

	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/profile"
	"github.com/abhisek/bizpro/internal/scoring"
)

var table = Table{
	classify.LevelEntry: {
		{Title: "Foundation", Duration: "1-2 months", Goals: []string{"a", "b"}},
		{Title: "Practice", Duration: "2-3 months", Goals: []string{"c"}},
	},
	classify.LevelIntermediate: {
		{Title: "Skill Strengthening", Duration: "1-2 months", WeaknessGoal: "Improve %s"},
		{Title: "Communication", Duration: "2-3 months", Goals: []string{"d"}},
	},
}

func TestBuild_Static(t *testing.T) {
	got := Build(table, classify.LevelEntry, []string{"ignored"})
	if len(got) != 2 {
		t.Fatalf("got %d phases, want 2", len(got))
	}
	if got[0].Phase != 1 || got[1].Phase != 2 || got[1].Title != "Practice" {
		t.Errorf("unexpected phases %+v", got)
	}
	got[0].Goals[0] = "changed"
	if table[classify.LevelEntry][0].Goals[0] != "a" {
		t.Error("Build shared goal slice with table")
	}
}

func TestBuild_WeaknessGoals(t *testing.T) {
	got := Build(table, classify.LevelIntermediate, []string{"Business vocabulary", "Situational judgment skills"})
	want := []string{"Improve business vocabulary", "Improve situational judgment skills"}
	if len(got[0].Goals) != len(want) {
		t.Fatalf("goals = %v, want %v", got[0].Goals, want)
	}
	for i := range want {
		if got[0].Goals[i] != want[i] {
			t.Errorf("goal %d = %q, want %q", i, got[0].Goals[i], want[i])
		}
	}

	empty := Build(table, classify.LevelIntermediate, nil)
	if empty[0].Goals == nil || len(empty[0].Goals) != 0 {
		t.Errorf("expected empty non-nil goals, got %#v", empty[0].Goals)
	}
}

func TestBuild_UnknownLevel(t *testing.T) {
	if got := Build(table, classify.LevelExecutive, nil); len(got) != 0 {
		t.Errorf("got %d phases, want 0", len(got))
	}
}

var rules = Rules{
	List: []Rule{
		{When: ScoreBelow{"vocabulary", 60}, Advice: "vocab"},
		{When: GoalIs(profile.GoalJobChange), Advice: "cert"},
		{When: UsageIncludes(profile.UsageInterview), Advice: "mock"},
		{When: WeakIn{"meeting", "presentation"}, Advice: "speak"},
	},
	Fallback: "keep going",
}

func TestRecommendations_Order(t *testing.T) {
	f := Facts{
		Profile: profile.Profile{
			Goal:         profile.GoalJobChange,
			EnglishUsage: []profile.Usage{profile.UsageInterview},
		},
		Scores:   scoring.Scores{{"vocabulary", 59}},
		WeakKeys: []string{"presentation"},
	}
	got := Recommendations(rules, f)
	want := []string{"vocab", "cert", "mock", "speak"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rec %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecommendations_Fallback(t *testing.T) {
	f := Facts{
		Profile: profile.Profile{Goal: profile.GoalSkillUp, EnglishUsage: []profile.Usage{profile.UsageEmail}},
		Scores:  scoring.Scores{{"vocabulary", 60}},
	}
	got := Recommendations(rules, f)
	if len(got) != 1 || got[0] != "keep going" {
		t.Errorf("got %v, want [keep going]", got)
	}
}

func TestServices(t *testing.T) {
	c := Catalog{
		Learning:     Service{Name: "app"},
		Speaking:     Service{Name: "talk"},
		SpeakingKeys: []string{"situationJudgment"},
		Interview:    Service{Name: "tool"},
	}

	tests := []struct {
		name  string
		usage []profile.Usage
		weak  []string
		want  []string
	}{
		{"learning only", []profile.Usage{profile.UsageEmail}, nil, []string{"app"}},
		{"speaking", nil, []string{"situationJudgment"}, []string{"app", "talk"}},
		{"interview only", []profile.Usage{profile.UsageInterview}, []string{"reading"}, []string{"app", "tool"}},
		{"all", []profile.Usage{profile.UsageInterview}, []string{"situationJudgment"}, []string{"app", "talk", "tool"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Services(c, Facts{Profile: profile.Profile{EnglishUsage: tt.usage}, WeakKeys: tt.weak})
			if len(got) != len(tt.want) {
				t.Fatalf("got %d services, want %d", len(got), len(tt.want))
			}
			for i, s := range got {
				if s.Name != tt.want[i] || s.Rank != i+1 {
					t.Errorf("service %d = %s rank %d", i, s.Name, s.Rank)
				}
			}
		})
	}
}
