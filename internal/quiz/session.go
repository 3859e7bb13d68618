package quiz

import (
	"context"
	"errors"
	"sync"

	"lab-tutor/internal/content"
)

// ErrBusy is returned when a mutator is called while a generation
// request for this session is still in flight.
var ErrBusy = errors.New("quiz: generation request already in flight")

// ItemSource produces quiz items; failures surface as an empty slice.
type ItemSource interface {
	QuizItems(ctx context.Context, count int, topicHint string) []content.QuizItem
}

// Session owns one content set and its progression, and guards both
// against re-entry while a generation call is outstanding. A failed or
// empty generation leaves the set untouched; the caller distinguishes
// "nothing was generated" from "still loading" via the returned count
// and Busy.
type Session struct {
	mu        sync.Mutex
	gw        ItemSource
	batchSize int
	set       *content.Set[content.QuizItem]
	progress  *Progress
	topic     string
	busy      bool
}

func NewSession(gw ItemSource, batchSize int, seed []content.QuizItem) *Session {
	set := content.NewSet(seed)
	return &Session{
		gw:        gw,
		batchSize: batchSize,
		set:       set,
		progress:  NewProgress(set),
	}
}

func (s *Session) Progress() *Progress { return s.progress }

func (s *Session) Topic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// StartNew generates a fresh batch and replaces the whole set, resetting
// progression. Returns the number of items installed; zero means the
// generation yielded nothing and the previous quiz is still intact.
func (s *Session) StartNew(ctx context.Context, topicHint string) (int, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	items := s.gw.QuizItems(ctx, s.batchSize, topicHint)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if len(items) == 0 {
		return 0, nil
	}
	s.topic = topicHint
	s.set.Replace(items)
	s.progress = NewProgress(s.set)
	return len(items), nil
}

// RequestMore generates another batch for the current topic and appends
// it, moving progression to the first new item. Score is preserved.
// Returns the number of items appended; zero means the set is unchanged.
func (s *Session) RequestMore(ctx context.Context, topicHint string) (int, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	items := s.gw.QuizItems(ctx, s.batchSize, topicHint)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if len(items) == 0 {
		return 0, nil
	}
	if topicHint != "" {
		s.topic = topicHint
	}
	s.progress.Extend(items)
	return len(items), nil
}

func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}
