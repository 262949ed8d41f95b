package bank

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Bank is an immutable pool of question items and writing prompts.
// It has no mutation API; share a single instance across sessions.
type Bank struct {
	name     string
	title    string
	items    []*QuestionItem
	prompts  []*WritingPrompt
	byID     map[string]*QuestionItem
	byStrata map[stratumKey][]*QuestionItem
}

type stratumKey struct {
	cat  Category
	diff Difficulty
}

// bankFile is the on-disk YAML layout.
type bankFile struct {
	Name      string          `yaml:"name"`
	Title     string          `yaml:"title"`
	Questions []QuestionItem  `yaml:"questions"`
	Writing   []WritingPrompt `yaml:"writing"`
}

// Names returns the names of the embedded banks.
func Names() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Load parses and validates the embedded bank with the given name.
func Load(name string) (*Bank, error) {
	raw, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBank, name)
		}
		return nil, fmt.Errorf("read bank %q: %w", name, err)
	}
	return Parse(raw)
}

// MustLoad is like Load but panics on error. Embedded banks are
// validated by tests, so a failure here is a programming error.
func MustLoad(name string) *Bank {
	b, err := Load(name)
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFile parses and validates a bank from a YAML file on disk.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a bank from YAML bytes.
func Parse(raw []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	return New(f.Name, f.Title, f.Questions, f.Writing)
}

// New builds and validates a bank from in-memory items. The slices are copied.
func New(name, title string, items []QuestionItem, prompts []WritingPrompt) (*Bank, error) {
	b := &Bank{
		name:     name,
		title:    title,
		byID:     make(map[string]*QuestionItem, len(items)),
		byStrata: make(map[stratumKey][]*QuestionItem),
	}
	for i := range items {
		q := items[i]
		q.Choices = slices.Clone(q.Choices)
		b.items = append(b.items, &q)
	}
	for i := range prompts {
		p := prompts[i]
		p.Criteria = slices.Clone(p.Criteria)
		b.prompts = append(b.prompts, &p)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	for _, q := range b.items {
		b.byID[q.ID] = q
		k := stratumKey{q.Category, q.Difficulty}
		b.byStrata[k] = append(b.byStrata[k], q)
	}
	return b, nil
}

// Validate performs structural checks on the bank contents.
// Returns a combined error describing all problems found, or nil if valid.
func (b *Bank) Validate() error {
	var errs []string

	if b.name == "" {
		errs = append(errs, "bank has no name")
	}
	if len(b.items) == 0 {
		errs = append(errs, "bank has no questions")
	}

	ids := make(map[string]bool, len(b.items)+len(b.prompts))
	for _, q := range b.items {
		switch {
		case q.ID == "":
			errs = append(errs, "question with empty ID")
		case ids[q.ID]:
			errs = append(errs, fmt.Sprintf("duplicate ID: %q", q.ID))
		}
		ids[q.ID] = true

		if q.Category == "" {
			errs = append(errs, fmt.Sprintf("question %q has no category", q.ID))
		}
		if !q.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("question %q has unknown difficulty %q", q.ID, q.Difficulty))
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %q has no prompt", q.ID))
		}
		if len(q.Choices) < 2 {
			errs = append(errs, fmt.Sprintf("question %q has %d choices, need at least 2", q.ID, len(q.Choices)))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			errs = append(errs, fmt.Sprintf("question %q correct index %d out of range", q.ID, q.CorrectIndex))
		}
	}

	for _, p := range b.prompts {
		switch {
		case p.ID == "":
			errs = append(errs, "writing prompt with empty ID")
		case ids[p.ID]:
			errs = append(errs, fmt.Sprintf("duplicate ID: %q", p.ID))
		}
		ids[p.ID] = true
		if strings.TrimSpace(p.Instruction) == "" {
			errs = append(errs, fmt.Sprintf("writing prompt %q has no instruction", p.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("bank %q validation failed:\n  %s", b.name, strings.Join(errs, "\n  "))
	}
	return nil
}

// Name returns the bank's short name (e.g. "core").
func (b *Bank) Name() string { return b.name }

// Title returns the bank's display title.
func (b *Bank) Title() string { return b.title }

// Item returns the question with the given ID, or nil.
func (b *Bank) Item(id string) *QuestionItem {
	return b.byID[id]
}

// Items returns all questions in bank order.
func (b *Bank) Items() []*QuestionItem {
	return slices.Clone(b.items)
}

// ByStratum returns the questions of one (category, difficulty) bucket in bank order.
func (b *Bank) ByStratum(cat Category, diff Difficulty) []*QuestionItem {
	return slices.Clone(b.byStrata[stratumKey{cat, diff}])
}

// Prompts returns all writing prompts in bank order.
func (b *Bank) Prompts() []*WritingPrompt {
	return slices.Clone(b.prompts)
}

// Composition returns the population count of every stratum in the bank.
func (b *Bank) Composition() []Stratum {
	var cats []Category
	seen := make(map[Category]bool)
	for _, q := range b.items {
		if !seen[q.Category] {
			seen[q.Category] = true
			cats = append(cats, q.Category)
		}
	}
	var out []Stratum
	for _, c := range cats {
		for _, d := range Difficulties() {
			out = append(out, Stratum{Category: c, Difficulty: d, Count: len(b.byStrata[stratumKey{c, d}])})
		}
	}
	return out
}
