package tutor

import (
	"context"
	"errors"
	"sync"
	"time"

	"lab-tutor/internal/llm"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of a tutor conversation transcript.
type Turn struct {
	Role      string
	Text      string
	CreatedAt time.Time
}

// ErrBusy is returned when PostMessage is called while a previous reply
// is still in flight; replaying an incomplete transcript would corrupt
// the conversation order.
var ErrBusy = errors.New("tutor: reply request already in flight")

// Replier answers a user message given the conversation so far.
// Failures surface as a fixed apology string, never an error.
type Replier interface {
	Reply(ctx context.Context, history []llm.Message, message string) string
}

// Session holds the ordered transcript of a tutor chat. The transcript
// is append-only and is replayed in full on every message; the remote
// model keeps no state between calls.
type Session struct {
	mu    sync.Mutex
	gw    Replier
	turns []Turn
	busy  bool
}

func NewSession(gw Replier) *Session {
	return &Session{gw: gw}
}

// PostMessage appends the user's turn, obtains a reply over the
// transcript as it stood before this call, appends the assistant's turn
// and returns its text. An absorbed remote failure still yields a
// normal assistant turn carrying the apology text.
func (s *Session) PostMessage(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.busy = true
	history := make([]llm.Message, 0, len(s.turns))
	for _, t := range s.turns {
		history = append(history, llm.Message{Role: t.Role, Content: t.Text})
	}
	s.turns = append(s.turns, Turn{Role: RoleUser, Text: text, CreatedAt: time.Now()})
	s.mu.Unlock()

	reply := s.gw.Reply(ctx, history, text)

	s.mu.Lock()
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Text: reply, CreatedAt: time.Now()})
	s.busy = false
	s.mu.Unlock()
	return reply, nil
}

func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Transcript returns a copy of the turns so far.
func (s *Session) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Reset starts a fresh conversation, discarding the transcript.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
