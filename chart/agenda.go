package chart

import (
	"fmt"

	"github.com/dhamidi/chartparse/grammar"
)

// Phase describes what an Agenda can do next.
type Phase int

const (
	// Exhausted means the stack is empty and every word has been seeded.
	Exhausted Phase = iota
	// NeedWords means the stack is empty and the next word must be seeded.
	NeedWords
	// Pending means constituents are waiting on the stack.
	Pending
)

func (p Phase) String() string {
	switch p {
	case Exhausted:
		return "exhausted"
	case NeedWords:
		return "need-words"
	case Pending:
		return "pending"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Agenda is a LIFO stack of constituents that is refilled from the sentence
// one word at a time, only when it runs empty.
type Agenda struct {
	words []grammar.Word
	next  int
	stack []*Constituent
	ids   *grammar.Sequence
}

// NewAgenda returns an agenda over words. Constituent identities are drawn
// from ids.
func NewAgenda(words []grammar.Word, ids *grammar.Sequence) *Agenda {
	return &Agenda{words: words, ids: ids}
}

// Phase returns the agenda's current phase.
func (a *Agenda) Phase() Phase {
	switch {
	case len(a.stack) > 0:
		return Pending
	case a.next < len(a.words):
		return NeedWords
	default:
		return Exhausted
	}
}

// Position returns the index of the next word to be seeded.
func (a *Agenda) Position() int {
	return a.next
}

// Len returns the number of pending constituents.
func (a *Agenda) Len() int {
	return len(a.stack)
}

// Seed pushes one lexical constituent per category of the next word, in the
// word's category order, and advances past it. Seed panics unless the phase
// is NeedWords.
func (a *Agenda) Seed() {
	if a.Phase() != NeedWords {
		panic(fmt.Sprintf("chart: seed in phase %s", a.Phase()))
	}
	w := a.words[a.next]
	if len(w.Categories) == 0 {
		panic(fmt.Sprintf("chart: word %q at %d: %v", w.Text, a.next, grammar.ErrNoCategories))
	}
	for _, cat := range w.Categories {
		a.Push(a.New(cat, a.next, a.next+1, nil))
	}
	a.next++
}

// New creates a constituent with the next identity without pushing it.
func (a *Agenda) New(category string, start, end int, rule *grammar.Rule) *Constituent {
	return &Constituent{
		ID:       a.ids.Next(),
		Category: category,
		Start:    start,
		End:      end,
		Rule:     rule,
	}
}

// Push places c on top of the stack.
func (a *Agenda) Push(c *Constituent) {
	a.stack = append(a.stack, c)
}

// Pop removes and returns the top constituent. Pop on an empty stack panics.
func (a *Agenda) Pop() *Constituent {
	if len(a.stack) == 0 {
		panic("chart: pop from empty agenda")
	}
	top := a.stack[len(a.stack)-1]
	a.stack[len(a.stack)-1] = nil
	a.stack = a.stack[:len(a.stack)-1]
	return top
}

// Next seeds the next word if the stack is empty, then pops. ok is false once
// the agenda is exhausted.
func (a *Agenda) Next() (c *Constituent, ok bool) {
	switch a.Phase() {
	case Exhausted:
		return nil, false
	case NeedWords:
		a.Seed()
	}
	return a.Pop(), true
}

// Trace is the ordered history of constituents popped from an agenda.
type Trace []*Constituent

// Reversed returns the trace most recently discovered first.
func (t Trace) Reversed() Trace {
	out := make(Trace, len(t))
	for i, c := range t {
		out[len(t)-1-i] = c
	}
	return out
}

// Spanning returns the constituents of category cat covering [start, end).
func (t Trace) Spanning(cat string, start, end int) []*Constituent {
	var out []*Constituent
	for _, c := range t {
		if c.Category == cat && c.Start == start && c.End == end {
			out = append(out, c)
		}
	}
	return out
}
