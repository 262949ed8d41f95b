package bank

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Sample draws a stratified test according to plan.
//
// For each category in plan order, each stratum draws its target count
// uniformly without replacement from its own pool, basic to advanced. A
// stratum that comes up short is padded with unused items of the same
// category from the nearest difficulty tier (harder first on ties), and a
// Deficit is recorded. If the category as a whole cannot cover its target,
// Sample returns a *SamplingDeficitError.
//
// A nil rng uses a fresh unseeded source.
func (b *Bank) Sample(rng *rand.Rand, plan SamplePlan) (*SampledTest, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	test := &SampledTest{Preset: b.name}
	for _, cat := range plan.Categories() {
		items, deficits, err := b.sampleCategory(rng, cat, plan.strataFor(cat))
		if err != nil {
			return nil, err
		}
		test.Items = append(test.Items, items...)
		test.Deficits = append(test.Deficits, deficits...)
	}

	switch plan.Prompts {
	case PromptsAll:
		test.Prompts = slices.Clone(b.prompts)
	case PromptsOne:
		if len(b.prompts) > 0 {
			test.Prompts = []*WritingPrompt{b.prompts[rng.IntN(len(b.prompts))]}
		}
	}
	return test, nil
}

// strataFor returns the plan's targets for one category indexed by difficulty rank.
func (p SamplePlan) strataFor(cat Category) [3]int {
	var want [3]int
	for _, s := range p.Strata {
		if s.Category == cat && s.Difficulty.Valid() {
			want[s.Difficulty.Rank()] += s.Count
		}
	}
	return want
}

func (b *Bank) sampleCategory(rng *rand.Rand, cat Category, want [3]int) ([]*QuestionItem, []Deficit, error) {
	tiers := Difficulties()

	var pools [3][]*QuestionItem
	totalWant, totalHave := 0, 0
	for i, d := range tiers {
		pool := slices.Clone(b.byStrata[stratumKey{cat, d}])
		rng.Shuffle(len(pool), func(a, c int) { pool[a], pool[c] = pool[c], pool[a] })
		pools[i] = pool
		totalWant += want[i]
		totalHave += len(pool)
	}
	if totalHave < totalWant {
		return nil, nil, &SamplingDeficitError{Category: cat, Want: totalWant, Have: totalHave}
	}

	// First pass: every stratum takes what it can from its own pool.
	var drawn [3][]*QuestionItem
	for i := range tiers {
		n := min(want[i], len(pools[i]))
		drawn[i] = slices.Clone(pools[i][:n])
		pools[i] = pools[i][n:]
	}

	// Second pass: pad short strata from neighbouring tiers.
	var deficits []Deficit
	for i, d := range tiers {
		short := want[i] - len(drawn[i])
		if short <= 0 {
			continue
		}
		def := Deficit{Category: cat, Difficulty: d, Want: want[i], Have: len(drawn[i])}
		for _, j := range neighbours(i, len(tiers)) {
			if short == 0 {
				break
			}
			n := min(short, len(pools[j]))
			if n == 0 {
				continue
			}
			drawn[i] = append(drawn[i], pools[j][:n]...)
			pools[j] = pools[j][n:]
			short -= n
			def.PaddedFrom = append(def.PaddedFrom, tiers[j])
		}
		deficits = append(deficits, def)
	}

	var out []*QuestionItem
	for i := range tiers {
		out = append(out, drawn[i]...)
	}
	return out, deficits, nil
}

// neighbours returns the other tier ranks ordered by distance from i,
// harder before easier at equal distance.
func neighbours(i, n int) []int {
	var out []int
	for j := range n {
		if j != i {
			out = append(out, j)
		}
	}
	slices.SortStableFunc(out, func(a, c int) int {
		da, dc := abs(a-i), abs(c-i)
		if da != dc {
			return cmp.Compare(da, dc)
		}
		return cmp.Compare(c, a)
	})
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
