package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/bizpro/internal/answers"
	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/profile"
)

type Options struct {
	Store   Store
	Catalog *Catalog
	// Preset is used when Start is called with an empty name.
	Preset string
	Logger *slog.Logger
	// Rand returns the source for one test draw. Nil draws fresh randomness.
	Rand func() *rand.Rand
	Now  func() time.Time
}

// Service runs the session lifecycle on top of a Store. Operations are
// serialized so a session never sees two writers.
type Service struct {
	store   Store
	catalog *Catalog
	preset  string
	logger  *slog.Logger
	rand    func() *rand.Rand
	now     func() time.Time

	mu sync.Mutex
}

func NewService(opts Options) *Service {
	s := &Service{
		store:   opts.Store,
		catalog: opts.Catalog,
		preset:  opts.Preset,
		logger:  opts.Logger,
		rand:    opts.Rand,
		now:     opts.Now,
	}
	if s.catalog == nil {
		s.catalog = NewCatalog()
	}
	if s.store == nil {
		s.store = NewMemoryStore(s.catalog, 0)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Catalog exposes the preset/bank resolver, which stores need to rehydrate.
func (s *Service) Catalog() *Catalog { return s.catalog }

// Start validates prof, samples a fresh test and stores a new session.
func (s *Service) Start(ctx context.Context, presetName string, prof profile.Profile) (*Session, error) {
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if presetName == "" {
		presetName = s.preset
	}
	p, b, err := s.catalog.Resolve(presetName)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if s.rand != nil {
		rng = s.rand()
	}
	test, err := b.Sample(rng, p.Plan())
	if err != nil {
		return nil, fmt.Errorf("sample %s test: %w", p.Name, err)
	}
	test.Preset = p.Name

	now := s.now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		Preset:    p,
		Profile:   prof,
		Test:      test,
		Recorder:  answers.NewRecorder(test),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	for _, d := range test.Deficits {
		s.logger.WarnContext(ctx, "stratum padded",
			"session", sess.ID, "category", d.Category, "difficulty", d.Difficulty,
			"want", d.Want, "have", d.Have)
	}
	s.logger.InfoContext(ctx, "session started",
		"session", sess.ID, "preset", p.Name, "questions", len(test.Items), "prompts", len(test.Prompts))
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(ctx, id)
}

// Answer records choice for questionID. choice may be answers.SkipIndex.
func (s *Service) Answer(ctx context.Context, id, questionID string, choice int) (*Session, answers.Record, error) {
	var rec answers.Record
	sess, err := s.update(ctx, id, func(sess *Session) error {
		if sess.Phase() != PhaseQuestions {
			return fmt.Errorf("%w: %s", ErrWrongPhase, sess.Phase())
		}
		var err error
		rec, err = sess.Recorder.Record(questionID, choice)
		return err
	})
	return sess, rec, err
}

func (s *Service) Skip(ctx context.Context, id, questionID string) (*Session, answers.Record, error) {
	return s.Answer(ctx, id, questionID, answers.SkipIndex)
}

// SubmitWriting stores a response to promptID. Empty text is accepted
// and counts as skipping the task.
func (s *Service) SubmitWriting(ctx context.Context, id, promptID, text string) (*Session, error) {
	return s.update(ctx, id, func(sess *Session) error {
		if sess.Phase() != PhaseWriting {
			return fmt.Errorf("%w: %s", ErrWrongPhase, sess.Phase())
		}
		if sess.Test.Prompt(promptID) == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPrompt, promptID)
		}
		if sess.hasWriting(promptID) {
			return fmt.Errorf("%w: %s", ErrPromptAnswered, promptID)
		}
		sess.Writing = append(sess.Writing, answers.WritingResponse{
			PromptID: promptID,
			Text:     strings.TrimSpace(text),
		})
		return nil
	})
}

// Finish commits the answers and runs the diagnosis. Unanswered writing
// prompts do not block it.
func (s *Service) Finish(ctx context.Context, id string) (*diagnosis.Result, error) {
	sess, err := s.update(ctx, id, func(sess *Session) error {
		if sess.Result != nil {
			return ErrFinished
		}
		records, err := sess.Recorder.Commit()
		if err != nil {
			return err
		}
		sess.Result = diagnosis.Diagnose(sess.Preset, sess.Profile, records, sess.Writing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "session finished",
		"session", sess.ID, "level", sess.Result.BusinessLevel, "overall", sess.Result.OverallScore)
	return sess.Result, nil
}

// update loads the session, applies fn and stores the result. Nothing is
// stored when fn fails.
func (s *Service) update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return sess, err
	}
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}
