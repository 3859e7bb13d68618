package quiz

import (
	"fmt"

	"lab-tutor/internal/content"
)

type State int

const (
	// StateEmpty signals that no content exists yet and the surface
	// should show a loading/placeholder condition instead of a quiz.
	StateEmpty State = iota
	StateInProgress
	StateAwaitingNext
	StateCompleted
)

// NoSelection marks that the learner has not answered the current item.
const NoSelection = -1

// Progress tracks position, scoring and completion over a set of quiz
// items. Wrong-state calls are caller bugs and panic; the only tolerated
// repeat is re-selecting after an answer is locked in, which is a no-op
// (first answer is final).
type Progress struct {
	set       *content.Set[content.QuizItem]
	position  int
	score     int
	selection int
	state     State
}

func NewProgress(set *content.Set[content.QuizItem]) *Progress {
	p := &Progress{set: set, selection: NoSelection}
	if set.Len() > 0 {
		p.state = StateInProgress
	}
	return p
}

func (p *Progress) State() State   { return p.state }
func (p *Progress) Position() int  { return p.position }
func (p *Progress) Score() int     { return p.score }
func (p *Progress) Selection() int { return p.selection }
func (p *Progress) Total() int     { return p.set.Len() }
func (p *Progress) Answered() bool { return p.selection != NoSelection }

func (p *Progress) Current() content.QuizItem {
	if p.state == StateEmpty || p.state == StateCompleted {
		panic(fmt.Sprintf("quiz: Current called in state %d", p.state))
	}
	return p.set.At(p.position)
}

// SelectOption locks in the learner's answer for the current item and
// scores it. Re-invocation while a selection exists is a no-op.
func (p *Progress) SelectOption(idx int) {
	if p.state == StateAwaitingNext {
		return
	}
	if p.state != StateInProgress {
		panic(fmt.Sprintf("quiz: SelectOption called in state %d", p.state))
	}
	item := p.set.At(p.position)
	if idx < 0 || idx >= len(item.Options) {
		panic(fmt.Sprintf("quiz: option index %d out of range for %d options", idx, len(item.Options)))
	}
	p.selection = idx
	if idx == item.CorrectAnswer {
		p.score++
	}
	p.state = StateAwaitingNext
}

// Advance moves past an answered item: to the next one, or to
// Completed when the set is exhausted.
func (p *Progress) Advance() {
	if p.state != StateAwaitingNext {
		panic(fmt.Sprintf("quiz: Advance called in state %d", p.state))
	}
	if p.position+1 < p.set.Len() {
		p.position++
		p.selection = NoSelection
		p.state = StateInProgress
		return
	}
	p.state = StateCompleted
}

// Restart returns to the first item of the same set with score zeroed.
func (p *Progress) Restart() {
	p.position = 0
	p.score = 0
	p.selection = NoSelection
	if p.set.Len() > 0 {
		p.state = StateInProgress
	} else {
		p.state = StateEmpty
	}
}

// Extend appends freshly generated items and moves to the first of
// them. Score is preserved: this is "generate more, keep building".
func (p *Progress) Extend(items []content.QuizItem) {
	if p.state == StateAwaitingNext {
		panic("quiz: Extend called with an unadvanced answer")
	}
	if len(items) == 0 {
		return
	}
	first := p.set.Len()
	p.set.Append(items)
	p.position = first
	p.selection = NoSelection
	p.state = StateInProgress
}
