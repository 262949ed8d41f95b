package preset

import (
	"errors"
	"testing"

	"github.com/abhisek/bizpro/internal/classify"
)

func TestNames_DefaultFirst(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != Default {
		t.Errorf("Names() = %v", names)
	}
}

func TestGet(t *testing.T) {
	p, err := Get("")
	if err != nil || p.Name != Default {
		t.Fatalf("Get(\"\") = %v, %v", p, err)
	}
	if _, err := Get("legacy"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("got %v, want ErrUnknownPreset", err)
	}
}

func TestGet_ReturnsCopies(t *testing.T) {
	a := MustGet("core")
	a.Categories[0].Label = "changed"
	if MustGet("core").Categories[0].Label == "changed" {
		t.Error("preset mutation leaked between calls")
	}
}

func TestPresets_Complete(t *testing.T) {
	for _, name := range Names() {
		p := MustGet(name)
		t.Run(name, func(t *testing.T) {
			b, err := p.LoadBank()
			if err != nil {
				t.Fatalf("LoadBank: %v", err)
			}
			if _, err := b.Sample(nil, p.Plan()); err != nil {
				t.Errorf("Sample: %v", err)
			}
			for _, lvl := range classify.Levels() {
				if len(p.Roadmaps[lvl]) == 0 {
					t.Errorf("no roadmap for %s", lvl)
				}
			}
			for _, r := range []classify.ReadinessLevel{
				classify.ReadinessNotReady, classify.ReadinessBasic, classify.ReadinessReady, classify.ReadinessConfident,
			} {
				if len(p.Readiness[r].Tips) != 3 || p.Readiness[r].Description == "" {
					t.Errorf("readiness %s incomplete", r)
				}
			}
			if len(p.CommKeys) != 2 {
				t.Errorf("got %d comm keys, want 2", len(p.CommKeys))
			}
			if p.Rules.Fallback == "" {
				t.Error("no fallback advice")
			}
		})
	}
}

func TestCorePlan(t *testing.T) {
	p := MustGet("core")
	if got := p.Plan().Total(); got != 32 {
		t.Errorf("core plan total = %d, want 32", got)
	}
	if p.Advanced == nil || p.Advanced.Divisor != 9 {
		t.Error("core preset needs advanced axis with divisor 9")
	}
	if got := p.CategoryLabel("situation"); got != "SITUATION JUDGMENT" {
		t.Errorf("label = %q", got)
	}
	if got := p.CategoryLabel("writing"); got != "WRITING" {
		t.Errorf("fallback label = %q", got)
	}
}

func TestClassicPlan(t *testing.T) {
	p := MustGet("classic")
	if got := p.Plan().Total(); got != 18 {
		t.Errorf("classic plan total = %d, want 18", got)
	}
	if p.Advanced != nil {
		t.Error("classic preset has no advanced axis")
	}
	if len(p.ScoringConfig().Categories) != 4 {
		t.Error("classic scores four categories")
	}
}
