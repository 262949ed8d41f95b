// Package preset holds the named test configurations. A preset is data
// only: the category set, stratum targets, thresholds and every static
// lookup table the diagnosis pipeline reads.
package preset

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/classify"
	"github.com/abhisek/bizpro/internal/roadmap"
	"github.com/abhisek/bizpro/internal/scoring"
)

// Default is the canonical preset name.
const Default = "core"

// ErrUnknownPreset is returned by Get for an unregistered name.
var ErrUnknownPreset = errors.New("unknown preset")

// Category configures one question category.
type Category struct {
	ID       bank.Category
	Label    string
	ScoreKey string
	Strength string
	Weakness string
	// Targets are the sample counts for basic, intermediate and advanced.
	Targets [3]int
}

// Preset is a complete test configuration.
type Preset struct {
	Name       string
	Title      string
	Bank       string
	Categories []Category
	Advanced   *scoring.AdvancedAxis
	Prompts    bank.PromptMode

	Ladder    classify.Ladder
	CommKeys  []string
	Readiness classify.ReadinessTable
	Sentinels classify.Sentinels

	Roadmaps roadmap.Table
	Rules    roadmap.Rules
	Services roadmap.Catalog
}

var registry = map[string]func() *Preset{
	"core":    corePreset,
	"classic": classicPreset,
}

// Names returns the registered preset names, default first.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == Default:
			return -1
		case b == Default:
			return 1
		}
		return strings.Compare(a, b)
	})
	return names
}

// Get returns a fresh copy of the named preset. An empty name selects Default.
func Get(name string) (*Preset, error) {
	if name == "" {
		name = Default
	}
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// MustGet is like Get but panics on an unknown name.
func MustGet(name string) *Preset {
	p, err := Get(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Plan returns the stratified sampling plan, category by category.
func (p *Preset) Plan() bank.SamplePlan {
	plan := bank.SamplePlan{Prompts: p.Prompts}
	for _, c := range p.Categories {
		for i, d := range bank.Difficulties() {
			plan.Strata = append(plan.Strata, bank.Stratum{Category: c.ID, Difficulty: d, Count: c.Targets[i]})
		}
	}
	return plan
}

// ScoringConfig returns the sub-score configuration.
func (p *Preset) ScoringConfig() scoring.Config {
	cfg := scoring.Config{Advanced: p.Advanced}
	for _, c := range p.Categories {
		cfg.Categories = append(cfg.Categories, scoring.CategoryScore{Category: c.ID, Key: c.ScoreKey})
	}
	return cfg
}

// TraitLabels returns the strength/weakness labels in category order.
// The advanced axis is not labelled.
func (p *Preset) TraitLabels() []classify.TraitLabel {
	out := make([]classify.TraitLabel, 0, len(p.Categories))
	for _, c := range p.Categories {
		out = append(out, classify.TraitLabel{Key: c.ScoreKey, Strength: c.Strength, Weakness: c.Weakness})
	}
	return out
}

// CategoryLabel returns the display label of a category, or its
// upper-cased ID when unknown.
func (p *Preset) CategoryLabel(id bank.Category) string {
	for _, c := range p.Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return strings.ToUpper(string(id))
}

// ScoreLabel returns a display name for a sub-score key.
func (p *Preset) ScoreLabel(key string) string {
	for _, c := range p.Categories {
		if c.ScoreKey == key {
			return c.Label
		}
	}
	if p.Advanced != nil && p.Advanced.Key == key {
		return "ADVANCED SKILLS"
	}
	return strings.ToUpper(key)
}

// LoadBank loads the embedded bank for the preset.
func (p *Preset) LoadBank() (*bank.Bank, error) {
	return bank.Load(p.Bank)
}
