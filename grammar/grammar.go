// Package grammar holds the immutable inputs of a chart parse: words with
// their category readings, production rules and the pool that assigns rule
// identities. It also loads grammars from YAML, JSONC and EBNF files.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRight     = errors.New("rule has an empty right-hand side")
	ErrEmptyLabel     = errors.New("empty category label")
	ErrMalformedRule  = errors.New("malformed rule")
	ErrNoCategories   = errors.New("word has no categories")
	ErrUnknownFormat  = errors.New("unknown grammar file format")
	ErrUnsupportedExp = errors.New("unsupported ebnf expression")
)

// DefaultStart is the goal category used when a grammar does not name one.
const DefaultStart = "S"

// Sequence hands out monotonically increasing identities, starting at 1.
// The zero value is ready to use.
type Sequence struct {
	last int
}

// Next returns the next identity.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Last returns the most recently issued identity, or 0.
func (s *Sequence) Last() int {
	return s.last
}

// Word is one sentence token together with every category it can be read as.
type Word struct {
	Text       string
	Categories []string
}

// NewWord validates categories and returns the word.
func NewWord(text string, categories ...string) (Word, error) {
	if len(categories) == 0 {
		return Word{}, fmt.Errorf("%q: %w", text, ErrNoCategories)
	}
	for _, c := range categories {
		if c == "" {
			return Word{}, fmt.Errorf("%q: %w", text, ErrEmptyLabel)
		}
	}
	return Word{Text: text, Categories: append([]string(nil), categories...)}, nil
}

func (w Word) String() string {
	return fmt.Sprintf("%s : %s", w.Text, strings.Join(w.Categories, " "))
}

// Rule is a production Left -> Right. Rules are compared by identity, never by
// content: two rules with the same text created separately are distinct.
type Rule struct {
	ID    int
	Left  string
	Right []string
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Left, strings.Join(r.Right, " "))
}

// First returns the first right-hand symbol.
func (r *Rule) First() string {
	return r.Right[0]
}

// Len returns the number of right-hand symbols.
func (r *Rule) Len() int {
	return len(r.Right)
}

// ParseRule splits the textual form "S -> NP VP" into its left category and
// right-hand symbols.
func ParseRule(s string) (string, []string, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || fields[1] != "->" {
		return "", nil, fmt.Errorf("%w: %q: expected \"LEFT -> RIGHT...\"", ErrMalformedRule, s)
	}
	if len(fields) == 2 {
		return "", nil, fmt.Errorf("%w: %q", ErrEmptyRight, s)
	}
	for _, f := range fields[2:] {
		if f == "->" {
			return "", nil, fmt.Errorf("%w: %q: more than one arrow", ErrMalformedRule, s)
		}
	}
	return fields[0], fields[2:], nil
}

// Pool is an ordered collection of rules. Declaration order is significant:
// engines iterate rules in this order and the order is visible in traces.
type Pool struct {
	ids   Sequence
	rules []*Rule
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add appends a rule and assigns it the next identity. An empty right-hand
// side or an empty label is a malformed grammar reference and panics; loaders
// validate their input before calling Add.
func (p *Pool) Add(left string, right ...string) *Rule {
	if left == "" {
		panic(fmt.Sprintf("grammar: %v on left of rule %d", ErrEmptyLabel, len(p.rules)+1))
	}
	if len(right) == 0 {
		panic(fmt.Sprintf("grammar: %s: %v", left, ErrEmptyRight))
	}
	for _, sym := range right {
		if sym == "" {
			panic(fmt.Sprintf("grammar: %s: %v on right", left, ErrEmptyLabel))
		}
	}
	r := &Rule{
		ID:    p.ids.Next(),
		Left:  left,
		Right: append([]string(nil), right...),
	}
	p.rules = append(p.rules, r)
	return r
}

// AddText parses s with ParseRule and adds the result.
func (p *Pool) AddText(s string) (*Rule, error) {
	left, right, err := ParseRule(s)
	if err != nil {
		return nil, err
	}
	return p.Add(left, right...), nil
}

// Rules returns the rules in declaration order.
func (p *Pool) Rules() []*Rule {
	return p.rules
}

// Len returns the number of rules.
func (p *Pool) Len() int {
	return len(p.rules)
}

// Expanding returns the rules whose left category is cat, in declaration order.
func (p *Pool) Expanding(cat string) []*Rule {
	var out []*Rule
	for _, r := range p.rules {
		if r.Left == cat {
			out = append(out, r)
		}
	}
	return out
}

// Starting returns the rules whose first right-hand symbol is cat, in
// declaration order.
func (p *Pool) Starting(cat string) []*Rule {
	var out []*Rule
	for _, r := range p.rules {
		if r.First() == cat {
			out = append(out, r)
		}
	}
	return out
}
