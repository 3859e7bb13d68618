package content

import "fmt"

// QuizItem is a single multiple-choice question. CorrectAnswer is a
// zero-based index into Options.
type QuizItem struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

func (q QuizItem) Ident() int { return q.ID }

func (q QuizItem) WithIdent(id int) QuizItem {
	q.ID = id
	return q
}

func (q QuizItem) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("quiz item: empty question")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("quiz item: need at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("quiz item: correctAnswer %d out of range for %d options", q.CorrectAnswer, len(q.Options))
	}
	return nil
}

type Category string

const (
	CategoryBasic        Category = "Basic"
	CategoryIntermediate Category = "Intermediate"
	CategoryAdvanced     Category = "Advanced"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBasic, CategoryIntermediate, CategoryAdvanced:
		return true
	}
	return false
}

// VivaItem is a flash-card style oral-exam question.
type VivaItem struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category Category `json:"category"`
}

func (v VivaItem) Ident() int { return v.ID }

func (v VivaItem) WithIdent(id int) VivaItem {
	v.ID = id
	return v
}

func (v VivaItem) Validate() error {
	if v.Question == "" {
		return fmt.Errorf("viva item: empty question")
	}
	if v.Answer == "" {
		return fmt.Errorf("viva item: empty answer")
	}
	if !v.Category.Valid() {
		return fmt.Errorf("viva item: unknown category %q", v.Category)
	}
	return nil
}
