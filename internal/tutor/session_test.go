package tutor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lab-tutor/internal/llm"
)

type fakeReplier struct {
	histories [][]llm.Message
	messages  []string
	reply     func(message string) string
	onCall    func()
}

func (f *fakeReplier) Reply(_ context.Context, history []llm.Message, message string) string {
	snapshot := make([]llm.Message, len(history))
	copy(snapshot, history)
	f.histories = append(f.histories, snapshot)
	f.messages = append(f.messages, message)
	if f.onCall != nil {
		f.onCall()
	}
	if f.reply != nil {
		return f.reply(message)
	}
	return "reply to " + message
}

func TestTranscriptReplayFidelity(t *testing.T) {
	f := &fakeReplier{}
	s := NewSession(f)

	if _, err := s.PostMessage(context.Background(), "a"); err != nil {
		t.Fatalf("post a: %v", err)
	}
	if _, err := s.PostMessage(context.Background(), "b"); err != nil {
		t.Fatalf("post b: %v", err)
	}

	// first call sees an empty history
	if len(f.histories[0]) != 0 {
		t.Fatalf("first call history not empty: %+v", f.histories[0])
	}
	// second call replays the full prior exchange, in order
	h := f.histories[1]
	if len(h) != 2 {
		t.Fatalf("want 2 replayed turns, got %d", len(h))
	}
	if h[0].Role != RoleUser || h[0].Content != "a" {
		t.Fatalf("unexpected h[0]: %+v", h[0])
	}
	if h[1].Role != RoleAssistant || h[1].Content != "reply to a" {
		t.Fatalf("unexpected h[1]: %+v", h[1])
	}
	if f.messages[1] != "b" {
		t.Fatalf("new message not forwarded: %q", f.messages[1])
	}
}

func TestTranscriptOrderAndGrowth(t *testing.T) {
	f := &fakeReplier{}
	s := NewSession(f)

	for i := 0; i < 3; i++ {
		if _, err := s.PostMessage(context.Background(), fmt.Sprintf("m%d", i)); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}

	turns := s.Transcript()
	if len(turns) != 6 {
		t.Fatalf("want 6 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		wantRole := RoleUser
		if i%2 == 1 {
			wantRole = RoleAssistant
		}
		if turn.Role != wantRole {
			t.Fatalf("turn %d: want role %s, got %s", i, wantRole, turn.Role)
		}
	}

	// transcript sent for call n must contain 2n prior turns plus the new message
	for i, h := range f.histories {
		if len(h) != 2*i {
			t.Fatalf("call %d: want %d replayed turns, got %d", i, 2*i, len(h))
		}
	}
}

func TestApologyIsKeptAsAssistantTurn(t *testing.T) {
	const apology = "Sorry, I encountered an error communicating with the AI Tutor."
	f := &fakeReplier{reply: func(string) string { return apology }}
	s := NewSession(f)

	reply, err := s.PostMessage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if reply != apology {
		t.Fatalf("unexpected reply: %q", reply)
	}
	turns := s.Transcript()
	if len(turns) != 2 || turns[1].Text != apology {
		t.Fatalf("apology not recorded as assistant turn: %+v", turns)
	}
}

func TestReentryWhileInFlightIsRejected(t *testing.T) {
	f := &fakeReplier{}
	s := NewSession(f)

	var reentryErr error
	f.onCall = func() {
		if len(f.messages) == 1 {
			_, reentryErr = s.PostMessage(context.Background(), "interleaved")
		}
	}

	if _, err := s.PostMessage(context.Background(), "first"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if !errors.Is(reentryErr, ErrBusy) {
		t.Fatalf("want ErrBusy for re-entry, got %v", reentryErr)
	}
	if len(s.Transcript()) != 2 {
		t.Fatalf("interleaved message reached the transcript: %d turns", len(s.Transcript()))
	}
	if s.Busy() {
		t.Fatalf("session stuck busy")
	}
}

func TestResetStartsFreshConversation(t *testing.T) {
	f := &fakeReplier{}
	s := NewSession(f)

	if _, err := s.PostMessage(context.Background(), "a"); err != nil {
		t.Fatalf("post: %v", err)
	}
	s.Reset()
	if len(s.Transcript()) != 0 {
		t.Fatalf("reset did not clear transcript")
	}

	if _, err := s.PostMessage(context.Background(), "b"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if len(f.histories[1]) != 0 {
		t.Fatalf("history leaked across reset: %+v", f.histories[1])
	}
}
