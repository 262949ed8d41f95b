package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/bank"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/profile"
)

// storedSession is the serialized form. Items are stored by ID and looked
// up in the bank on load, since answer keys never leave the process.
type storedSession struct {
	ID        string                    `json:"id"`
	Preset    string                    `json:"preset"`
	Profile   profile.Profile           `json:"profile"`
	ItemIDs   []string                  `json:"itemIds"`
	PromptIDs []string                  `json:"promptIds"`
	Deficits  []bank.Deficit            `json:"deficits,omitempty"`
	Records   []answers.Record          `json:"records"`
	Committed bool                      `json:"committed"`
	Writing   []answers.WritingResponse `json:"writing,omitempty"`
	Result    *diagnosis.Result         `json:"result,omitempty"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

func encode(s *Session) ([]byte, error) {
	st := storedSession{
		ID:        s.ID,
		Preset:    s.Preset.Name,
		Profile:   s.Profile,
		ItemIDs:   make([]string, len(s.Test.Items)),
		PromptIDs: make([]string, len(s.Test.Prompts)),
		Deficits:  s.Test.Deficits,
		Records:   s.Recorder.AllRecords(),
		Committed: s.Recorder.Committed(),
		Writing:   s.Writing,
		Result:    s.Result,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	for i, q := range s.Test.Items {
		st.ItemIDs[i] = q.ID
	}
	for i, p := range s.Test.Prompts {
		st.PromptIDs[i] = p.ID
	}
	return json.Marshal(st)
}

func decode(c *Catalog, data []byte) (*Session, error) {
	var st storedSession
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	p, b, err := c.Resolve(st.Preset)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", st.ID, err)
	}

	test := &bank.SampledTest{Preset: p.Name, Deficits: st.Deficits}
	for _, id := range st.ItemIDs {
		q := b.Item(id)
		if q == nil {
			return nil, fmt.Errorf("session %s: item %s no longer in bank %s", st.ID, id, b.Name())
		}
		test.Items = append(test.Items, q)
	}
	prompts := b.Prompts()
	for _, id := range st.PromptIDs {
		found := false
		for _, wp := range prompts {
			if wp.ID == id {
				test.Prompts = append(test.Prompts, wp)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("session %s: prompt %s no longer in bank %s", st.ID, id, b.Name())
		}
	}

	rec, err := answers.Restore(test, st.Records, st.Committed)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", st.ID, err)
	}

	return &Session{
		ID:        st.ID,
		Preset:    p,
		Profile:   st.Profile,
		Test:      test,
		Recorder:  rec,
		Writing:   st.Writing,
		Result:    st.Result,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}, nil
}
