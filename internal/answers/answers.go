// Package answers records one answer per presented question during a
// single linear pass through a sampled test.
package answers

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/bizpro/internal/bank"
)

// SkipIndex is the chosen index recorded for an explicit skip.
const SkipIndex = -1

var (
	ErrUnknownQuestion  = errors.New("question is not part of this test")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrOutOfOrder       = errors.New("question answered out of order")
	ErrChoiceOutOfRange = errors.New("choice index out of range")
	ErrCommitted        = errors.New("answers already committed")
	ErrIncomplete       = errors.New("not every question has been answered")
)

// Record is the outcome of one presented question.
type Record struct {
	QuestionID  string          `json:"questionId"`
	Category    bank.Category   `json:"category"`
	Difficulty  bank.Difficulty `json:"difficulty"`
	ChosenIndex int             `json:"chosenIndex"`
	IsCorrect   bool            `json:"isCorrect"`
}

// Skipped reports whether the record is an explicit skip.
func (r Record) Skipped() bool { return r.ChosenIndex == SkipIndex }

// WritingResponse is a free-text answer to a writing prompt. It is kept
// with the result but not graded.
type WritingResponse struct {
	PromptID string `json:"promptId"`
	Text     string `json:"text"`
}

// Recorder accumulates records for one sampled test. Records are
// append-only and the recorder becomes read-only after Commit.
type Recorder struct {
	test      *bank.SampledTest
	records   []Record
	committed bool
}

// NewRecorder returns a recorder bound to test.
func NewRecorder(test *bank.SampledTest) *Recorder {
	return &Recorder{test: test}
}

// Restore rebuilds a recorder from previously recorded answers, replaying
// each one so the same checks apply.
func Restore(test *bank.SampledTest, records []Record, committed bool) (*Recorder, error) {
	r := NewRecorder(test)
	for _, rec := range records {
		if _, err := r.Record(rec.QuestionID, rec.ChosenIndex); err != nil {
			return nil, fmt.Errorf("restore %s: %w", rec.QuestionID, err)
		}
	}
	if committed {
		if _, err := r.Commit(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Record stores the answer for questionID. chosenIndex may be SkipIndex.
// Questions must be answered in presentation order.
func (r *Recorder) Record(questionID string, chosenIndex int) (Record, error) {
	if r.committed {
		return Record{}, ErrCommitted
	}
	idx := r.test.Index(questionID)
	if idx < 0 {
		return Record{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if idx < len(r.records) {
		return Record{}, fmt.Errorf("%w: %s", ErrAlreadyAnswered, questionID)
	}
	if idx > len(r.records) {
		return Record{}, fmt.Errorf("%w: %s, expected %s", ErrOutOfOrder, questionID, r.test.Items[len(r.records)].ID)
	}

	q := r.test.Items[idx]
	if chosenIndex != SkipIndex && (chosenIndex < 0 || chosenIndex >= len(q.Choices)) {
		return Record{}, fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, chosenIndex, len(q.Choices))
	}

	rec := Record{
		QuestionID:  q.ID,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
		ChosenIndex: chosenIndex,
		IsCorrect:   q.IsCorrect(chosenIndex),
	}
	r.records = append(r.records, rec)
	return rec, nil
}

// Skip records an explicit skip for questionID.
func (r *Recorder) Skip(questionID string) (Record, error) {
	return r.Record(questionID, SkipIndex)
}

// Next returns the next question to present, or nil when all are answered.
func (r *Recorder) Next() *bank.QuestionItem {
	if r.Done() {
		return nil
	}
	return r.test.Items[len(r.records)]
}

// Done reports whether every question has a record.
func (r *Recorder) Done() bool {
	return len(r.records) >= len(r.test.Items)
}

// Progress returns the number of answered questions and the total.
func (r *Recorder) Progress() (answered, total int) {
	return len(r.records), len(r.test.Items)
}

// Committed reports whether Commit has succeeded.
func (r *Recorder) Committed() bool { return r.committed }

// Commit freezes the recorder and returns the full record set.
func (r *Recorder) Commit() ([]Record, error) {
	if r.committed {
		return nil, ErrCommitted
	}
	if !r.Done() {
		return nil, fmt.Errorf("%w: %d of %d", ErrIncomplete, len(r.records), len(r.test.Items))
	}
	r.committed = true
	return slices.Clone(r.records), nil
}

// AllRecords returns a copy of the records so far, in presentation order.
func (r *Recorder) AllRecords() []Record {
	return slices.Clone(r.records)
}
