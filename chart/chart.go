// Package chart holds the bookkeeping shared by the parsing strategies:
// active arcs, completed constituents, the deduplicating chart of arcs and
// the agenda of constituents awaiting combination.
//
// Spans are half-open token ranges [Start, End) with zero-based positions.
package chart

import (
	"fmt"
	"strings"

	"github.com/dhamidi/chartparse/grammar"
)

// Arc is a rule partially matched over [Start, End). Cursor counts the
// right-hand symbols already matched.
type Arc struct {
	Rule   *grammar.Rule
	Start  int
	End    int
	Cursor int
}

// Complete reports whether every right-hand symbol has been matched.
func (a Arc) Complete() bool {
	return a.Cursor >= len(a.Rule.Right)
}

// Next returns the next expected right-hand symbol. Calling Next on a
// complete arc is an internal logic error and panics.
func (a Arc) Next() string {
	if a.Cursor < 0 || a.Cursor >= len(a.Rule.Right) {
		panic(fmt.Sprintf("chart: arc %q has no next symbol (cursor %d)", a.Rule, a.Cursor))
	}
	return a.Rule.Right[a.Cursor]
}

// Last reports whether the next expected symbol is the final one.
func (a Arc) Last() bool {
	return a.Cursor+1 == len(a.Rule.Right)
}

// Advance returns the arc with one more symbol matched, now ending at end.
func (a Arc) Advance(end int) Arc {
	return Arc{Rule: a.Rule, Start: a.Start, End: end, Cursor: a.Cursor + 1}
}

// String renders the dotted form, e.g. "VP -> V * NP".
func (a Arc) String() string {
	var sb strings.Builder
	sb.WriteString(a.Rule.Left)
	sb.WriteString(" -> ")
	sb.WriteString(strings.Join(a.Rule.Right[:a.Cursor], " "))
	sb.WriteString(" * ")
	sb.WriteString(strings.Join(a.Rule.Right[a.Cursor:], " "))
	return sb.String()
}

// Constituent is a completed span of a category. Rule is nil for lexical
// constituents seeded from a word's readings.
type Constituent struct {
	ID       int
	Category string
	Start    int
	End      int
	Rule     *grammar.Rule
}

// Lexical reports whether c was seeded directly from a word.
func (c *Constituent) Lexical() bool {
	return c.Rule == nil
}

func (c *Constituent) String() string {
	return fmt.Sprintf("%s[%d,%d)", c.Category, c.Start, c.End)
}

type arcKey struct {
	rule   *grammar.Rule
	start  int
	end    int
	cursor int
}

func keyOf(a Arc) arcKey {
	return arcKey{rule: a.Rule, start: a.Start, end: a.End, cursor: a.Cursor}
}

// Chart is an append-only set of arcs kept in insertion order. Two arcs are
// the same entry when they share rule identity, start, end and cursor.
type Chart struct {
	arcs []Arc
	seen map[arcKey]bool
}

// New returns an empty chart.
func New() *Chart {
	return &Chart{seen: make(map[arcKey]bool)}
}

// Add inserts a unless an equal arc is already present, and reports whether
// it was inserted.
func (c *Chart) Add(a Arc) bool {
	k := keyOf(a)
	if c.seen[k] {
		return false
	}
	c.seen[k] = true
	c.arcs = append(c.arcs, a)
	return true
}

// Contains reports whether an arc equal to a is present.
func (c *Chart) Contains(a Arc) bool {
	return c.seen[keyOf(a)]
}

// Len returns the number of arcs.
func (c *Chart) Len() int {
	return len(c.arcs)
}

// At returns the i-th arc in insertion order.
func (c *Chart) At(i int) Arc {
	return c.arcs[i]
}

// Arcs returns a copy of the arcs in insertion order.
func (c *Chart) Arcs() []Arc {
	return append([]Arc(nil), c.arcs...)
}

// Ending calls fn for every arc whose span ends at pos, in insertion order.
// Arcs added by fn are visited too if they also end at pos.
func (c *Chart) Ending(pos int, fn func(Arc)) {
	// c.arcs may grow while we iterate.
	for i := 0; i < len(c.arcs); i++ {
		if c.arcs[i].End == pos {
			fn(c.arcs[i])
		}
	}
}
