package profile

import (
	"strings"
	"testing"
)

func validProfile() Profile {
	return Profile{
		JobType:      JobEngineer,
		EnglishUsage: []Usage{UsageMeeting, UsageInterview},
		Goal:         GoalJobChange,
		CurrentLevel: LevelBasic,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		want   string
	}{
		{"missing job", func(p *Profile) { p.JobType = "" }, "jobType is required"},
		{"bad job", func(p *Profile) { p.JobType = "pilot" }, `jobType has invalid value "pilot"`},
		{"no usage", func(p *Profile) { p.EnglishUsage = nil }, "englishUsage is required"},
		{"empty usage", func(p *Profile) { p.EnglishUsage = []Usage{} }, "englishUsage"},
		{"dup usage", func(p *Profile) { p.EnglishUsage = []Usage{UsageEmail, UsageEmail} }, "duplicate"},
		{"bad usage", func(p *Profile) { p.EnglishUsage = []Usage{"karaoke"} }, "karaoke"},
		{"bad goal", func(p *Profile) { p.Goal = "fame" }, "goal has invalid value"},
		{"bad level", func(p *Profile) { p.CurrentLevel = "fluent" }, "currentLevel has invalid value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestUses(t *testing.T) {
	p := validProfile()
	if !p.Uses(UsageInterview) {
		t.Error("expected interview usage")
	}
	if p.Uses(UsageEmail) {
		t.Error("did not expect email usage")
	}
}
