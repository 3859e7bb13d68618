package content

import "testing"

func quizBatch(n int) []QuizItem {
	items := make([]QuizItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, QuizItem{
			Question:      "q",
			Options:       []string{"a", "b"},
			CorrectAnswer: 0,
			Explanation:   "e",
		})
	}
	return items
}

func TestSetReplaceRenumbers(t *testing.T) {
	items := quizBatch(3)
	// incoming identifiers must not be trusted
	items[0].ID = 42
	items[1].ID = 42
	items[2].ID = 7

	s := NewSet(items)
	if s.Len() != 3 {
		t.Fatalf("want 3 items, got %d", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).ID != i+1 {
			t.Fatalf("position %d: want id %d, got %d", i, i+1, s.At(i).ID)
		}
	}
}

func TestSetAppendRenumbersAndPreservesOrder(t *testing.T) {
	s := NewSet(quizBatch(3))

	batch := []QuizItem{
		{Question: "first new", Options: []string{"a", "b"}, CorrectAnswer: 0},
		{Question: "second new", Options: []string{"a", "b"}, CorrectAnswer: 1},
	}
	s.Append(batch)

	if s.Len() != 5 {
		t.Fatalf("want 5 items, got %d", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).ID != i+1 {
			t.Fatalf("position %d: want id %d, got %d", i, i+1, s.At(i).ID)
		}
	}
	if s.At(3).Question != "first new" || s.At(4).Question != "second new" {
		t.Fatalf("batch order not preserved: %q, %q", s.At(3).Question, s.At(4).Question)
	}
}

func TestSetAppendToEmptyStartsAtOne(t *testing.T) {
	s := NewSet[QuizItem](nil)
	s.Append(quizBatch(2))
	if s.Len() != 2 {
		t.Fatalf("want 2 items, got %d", s.Len())
	}
	if s.At(0).ID != 1 || s.At(1).ID != 2 {
		t.Fatalf("want ids 1,2 got %d,%d", s.At(0).ID, s.At(1).ID)
	}
}

func TestSetIdentifiersStayUniqueAcrossAppends(t *testing.T) {
	s := NewSet(quizBatch(1))
	for i := 0; i < 4; i++ {
		s.Append(quizBatch(3))
	}
	seen := make(map[int]bool)
	for i := 0; i < s.Len(); i++ {
		id := s.At(i).ID
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		if id != i+1 {
			t.Fatalf("position %d: want id %d, got %d", i, i+1, id)
		}
		seen[id] = true
	}
}

func TestSetItemsCopySemantics(t *testing.T) {
	s := NewSet(quizBatch(2))
	items := s.Items()
	items[0].Question = "mutated"
	if s.At(0).Question == "mutated" {
		t.Fatalf("internal state mutated via returned slice")
	}
}

func TestQuizItemValidate(t *testing.T) {
	ok := QuizItem{Question: "q", Options: []string{"a", "b", "c"}, CorrectAnswer: 2}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	bad := []QuizItem{
		{Question: "", Options: []string{"a", "b"}, CorrectAnswer: 0},
		{Question: "q", Options: []string{"only"}, CorrectAnswer: 0},
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 2},
		{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: -1},
	}
	for i, it := range bad {
		if err := it.Validate(); err == nil {
			t.Fatalf("bad item %d accepted", i)
		}
	}
}

func TestVivaItemValidate(t *testing.T) {
	ok := VivaItem{Question: "q", Answer: "a", Category: CategoryAdvanced}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
	bad := VivaItem{Question: "q", Answer: "a", Category: "Expert"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown category accepted")
	}
}
