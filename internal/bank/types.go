package bank

// Category identifies a question category (e.g. "vocabulary", "email").
type Category string

// Difficulty is a question difficulty tier.
type Difficulty string

const (
	Basic        Difficulty = "basic"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties returns all difficulty tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Basic, Intermediate, Advanced}
}

// Rank returns the ordinal position of the tier (basic=0), or -1 if unknown.
func (d Difficulty) Rank() int {
	switch d {
	case Basic:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return -1
	}
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	return d.Rank() >= 0
}

// QuestionItem is a single multiple-choice question. Items are immutable
// once the bank is loaded.
type QuestionItem struct {
	ID           string     `yaml:"id" json:"id"`
	Category     Category   `yaml:"category" json:"category"`
	Difficulty   Difficulty `yaml:"difficulty" json:"difficulty"`
	Prompt       string     `yaml:"prompt" json:"prompt"`
	Context      string     `yaml:"context,omitempty" json:"context,omitempty"`
	Choices      []string   `yaml:"choices" json:"choices"`
	CorrectIndex int        `yaml:"correct" json:"-"`
}

// IsCorrect reports whether chosen is the correct choice. A negative
// index (skip) is never correct.
func (q *QuestionItem) IsCorrect(chosen int) bool {
	return chosen >= 0 && chosen == q.CorrectIndex
}

// WritingPrompt is a free-response task. Responses are collected but not graded.
type WritingPrompt struct {
	ID          string   `yaml:"id" json:"id"`
	Scenario    string   `yaml:"scenario" json:"scenario"`
	Instruction string   `yaml:"instruction" json:"instruction"`
	Criteria    []string `yaml:"criteria,omitempty" json:"evaluationCriteria,omitempty"`
}

// Stratum is a (category, difficulty) bucket with a target sample count.
type Stratum struct {
	Category   Category
	Difficulty Difficulty
	Count      int
}

// PromptMode selects how writing prompts are drawn.
type PromptMode int

const (
	PromptsAll PromptMode = iota // Every prompt, in bank order
	PromptsOne                   // One prompt uniformly at random
)

// SamplePlan describes the fixed composition of a sampled test.
// Strata are drawn in slice order, so callers list them category by
// category, basic to advanced.
type SamplePlan struct {
	Strata  []Stratum
	Prompts PromptMode
}

// Total returns the number of items the plan asks for.
func (p SamplePlan) Total() int {
	n := 0
	for _, s := range p.Strata {
		n += s.Count
	}
	return n
}

// Categories returns the distinct categories of the plan in first-seen order.
func (p SamplePlan) Categories() []Category {
	var out []Category
	seen := make(map[Category]bool)
	for _, s := range p.Strata {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// Deficit records a stratum that could not supply its target from its own
// pool and was padded from neighbouring difficulty tiers.
type Deficit struct {
	Category   Category     `json:"category"`
	Difficulty Difficulty   `json:"difficulty"`
	Want       int          `json:"want"`
	Have       int          `json:"have"`
	PaddedFrom []Difficulty `json:"paddedFrom"`
}

// SampledTest is the ordered set of items and prompts presented in one session.
type SampledTest struct {
	Preset   string           `json:"preset"`
	Items    []*QuestionItem  `json:"items"`
	Prompts  []*WritingPrompt `json:"prompts"`
	Deficits []Deficit        `json:"deficits,omitempty"`
}

// Item returns the sampled item with the given ID, or nil.
func (t *SampledTest) Item(id string) *QuestionItem {
	for _, q := range t.Items {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// Index returns the presentation position of the item, or -1.
func (t *SampledTest) Index(id string) int {
	for i, q := range t.Items {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Prompt returns the sampled writing prompt with the given ID, or nil.
func (t *SampledTest) Prompt(id string) *WritingPrompt {
	for _, p := range t.Prompts {
		if p.ID == id {
			return p
		}
	}
	return nil
}
