package viva

import (
	"context"
	"errors"
	"sync"

	"lab-tutor/internal/content"
)

// ErrBusy is returned when GenerateMore is called while a previous
// generation request is still in flight.
var ErrBusy = errors.New("viva: generation request already in flight")

// ItemSource produces viva cards; failures surface as an empty slice.
type ItemSource interface {
	VivaItems(ctx context.Context, count int) []content.VivaItem
}

// Session owns one growing collection of oral-exam cards plus the
// per-card answer reveal state.
type Session struct {
	mu        sync.Mutex
	gw        ItemSource
	batchSize int
	set       *content.Set[content.VivaItem]
	revealed  map[int]bool
	busy      bool
}

func NewSession(gw ItemSource, batchSize int, seed []content.VivaItem) *Session {
	return &Session{
		gw:        gw,
		batchSize: batchSize,
		set:       content.NewSet(seed),
		revealed:  make(map[int]bool),
	}
}

func (s *Session) Items() []content.VivaItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Items()
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Len()
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// ToggleReveal flips the answer visibility of one card and reports the
// new state. Unknown ids are ignored and stay hidden.
func (s *Session) ToggleReveal(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > s.set.Len() {
		return false
	}
	s.revealed[id] = !s.revealed[id]
	return s.revealed[id]
}

func (s *Session) Revealed(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[id]
}

// GenerateMore appends a fresh batch of cards. Returns the number of
// cards added; zero means the generation yielded nothing and the
// collection is unchanged.
func (s *Session) GenerateMore(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return 0, ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	items := s.gw.VivaItems(ctx, s.batchSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if len(items) == 0 {
		return 0, nil
	}
	s.set.Append(items)
	return len(items), nil
}
