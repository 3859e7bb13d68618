package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorderAppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "events.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	correct := true
	ev1 := Event{Timestamp: time.Unix(1, 0).UTC(), UserID: 1, Kind: KindQuizAnswer, Correct: &correct}
	ev2 := Event{Timestamp: time.Unix(2, 0).UTC(), UserID: 2, Kind: KindGeneration, ContentKind: "quiz", Items: 10, Topic: "Shell Programming (Loops)"}
	if err := rec.AppendEvent(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendEvent(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadEvents()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].UserID != 1 || events[1].UserID != 2 {
		t.Fatalf("order mismatch: %+v", events)
	}
	if events[0].Correct == nil || !*events[0].Correct {
		t.Fatalf("quiz answer flag lost: %+v", events[0])
	}
	if events[1].Items != 10 || events[1].ContentKind != "quiz" {
		t.Fatalf("generation fields lost: %+v", events[1])
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}

func TestFileRecorderSkipsCorruptLines(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "events.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	if err := rec.AppendEvent(Event{Timestamp: time.Unix(1, 0).UTC(), UserID: 1, Kind: KindTutorChat}); err != nil {
		t.Fatalf("append: %v", err)
	}
	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = f.Close()

	events, err := rec.LoadEvents()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("want corrupt line skipped, got %d events", len(events))
	}
}
