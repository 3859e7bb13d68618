package viva

import (
	"context"
	"testing"

	"lab-tutor/internal/content"
)

type fakeSource struct {
	batch []content.VivaItem
	calls int
}

func (f *fakeSource) VivaItems(_ context.Context, count int) []content.VivaItem {
	f.calls++
	return f.batch
}

func seedCards() []content.VivaItem {
	return []content.VivaItem{
		{Question: "s1", Answer: "a1", Category: content.CategoryBasic},
		{Question: "s2", Answer: "a2", Category: content.CategoryAdvanced},
	}
}

func TestGenerateMoreAppendsRenumbered(t *testing.T) {
	src := &fakeSource{batch: []content.VivaItem{
		{ID: 99, Question: "g1", Answer: "ga1", Category: content.CategoryBasic},
	}}
	s := NewSession(src, 10, seedCards())

	added, err := s.GenerateMore(context.Background())
	if err != nil {
		t.Fatalf("GenerateMore: %v", err)
	}
	if added != 1 {
		t.Fatalf("want 1 added, got %d", added)
	}
	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("want 3 cards, got %d", len(items))
	}
	if items[2].ID != 3 || items[2].Question != "g1" {
		t.Fatalf("appended card not renumbered: %+v", items[2])
	}
}

func TestFailedGenerationLeavesCardsUntouched(t *testing.T) {
	src := &fakeSource{batch: nil}
	s := NewSession(src, 10, seedCards())

	added, err := s.GenerateMore(context.Background())
	if err != nil {
		t.Fatalf("GenerateMore: %v", err)
	}
	if added != 0 {
		t.Fatalf("want 0 added, got %d", added)
	}
	if s.Len() != 2 {
		t.Fatalf("collection changed on failed generation: %d", s.Len())
	}
	if s.Busy() {
		t.Fatalf("session stuck busy")
	}
}

func TestToggleReveal(t *testing.T) {
	s := NewSession(&fakeSource{}, 10, seedCards())

	if s.Revealed(1) {
		t.Fatalf("card starts revealed")
	}
	if !s.ToggleReveal(1) {
		t.Fatalf("first toggle should reveal")
	}
	if !s.Revealed(1) || s.Revealed(2) {
		t.Fatalf("reveal state wrong: 1=%v 2=%v", s.Revealed(1), s.Revealed(2))
	}
	if s.ToggleReveal(1) {
		t.Fatalf("second toggle should hide")
	}
	if s.ToggleReveal(42) {
		t.Fatalf("unknown id toggled")
	}
}
