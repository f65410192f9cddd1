package grammar

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/ebnf"
)

// LoadEBNF reads an EBNF grammar file. See FromEBNF for how productions map to
// rules and lexicon entries. An empty start selects DefaultStart.
func LoadEBNF(filename, start string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := ParseEBNF(filename, f, start)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %s: %d rules, %d words, start %s", filename, g.Pool.Len(), g.Lexicon.Len(), g.Start)
	return g, nil
}

// ParseEBNF parses EBNF source and converts it with FromEBNF.
func ParseEBNF(filename string, src io.Reader, start string) (*Grammar, error) {
	eg, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return FromEBNF(eg, start)
}

// VerifyEBNF parses filename and checks that every production is defined and
// reachable from start.
func VerifyEBNF(filename, start string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	eg, err := ebnf.Parse(filename, f)
	if err != nil {
		return err
	}
	if start == "" {
		return nil
	}
	return ebnf.Verify(eg, start)
}

// FromEBNF converts a parsed EBNF grammar. Productions are visited in source
// order because rule order is significant and ebnf.Grammar is a map.
//
// A production whose alternatives are all string tokens declares a lexical
// category, each token being a word with that reading:
//
//	N = "编辑" | "学习" | "手册" .
//
// Every other production contributes one rule per alternative, and each
// alternative must be a plain sequence of names:
//
//	VP = V | V NP | ADV VP .
func FromEBNF(eg ebnf.Grammar, start string) (*Grammar, error) {
	if start == "" {
		start = DefaultStart
	}
	g := &Grammar{
		Start:   start,
		Pool:    NewPool(),
		Lexicon: NewLexicon(),
	}

	prods := make([]*ebnf.Production, 0, len(eg))
	for _, p := range eg {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})

	for _, prod := range prods {
		name := prod.Name.String
		if prod.Expr == nil {
			return nil, fmt.Errorf("%s: production %s: %w", prod.Pos(), name, ErrEmptyRight)
		}
		alts := alternatives(prod.Expr)

		if words, ok := tokens(alts); ok {
			for _, w := range words {
				if err := g.Lexicon.Add(w, name); err != nil {
					return nil, fmt.Errorf("%s: production %s: %w", prod.Pos(), name, err)
				}
			}
			continue
		}

		for _, alt := range alts {
			right, err := names(alt)
			if err != nil {
				return nil, fmt.Errorf("%s: production %s: %w", prod.Pos(), name, err)
			}
			g.Pool.Add(name, right...)
		}
	}

	return g, nil
}

func alternatives(expr ebnf.Expression) []ebnf.Expression {
	if alt, ok := expr.(ebnf.Alternative); ok {
		return alt
	}
	return []ebnf.Expression{expr}
}

func tokens(alts []ebnf.Expression) ([]string, bool) {
	words := make([]string, 0, len(alts))
	for _, a := range alts {
		tok, ok := a.(*ebnf.Token)
		if !ok {
			return nil, false
		}
		words = append(words, tok.String)
	}
	return words, true
}

func names(expr ebnf.Expression) ([]string, error) {
	switch e := expr.(type) {
	case *ebnf.Name:
		return []string{e.String}, nil
	case ebnf.Sequence:
		out := make([]string, 0, len(e))
		for _, item := range e {
			n, ok := item.(*ebnf.Name)
			if !ok {
				return nil, fmt.Errorf("%s: %w: %T in sequence", item.Pos(), ErrUnsupportedExp, item)
			}
			out = append(out, n.String)
		}
		return out, nil
	case nil:
		return nil, ErrEmptyRight
	default:
		return nil, fmt.Errorf("%s: %w: %T", e.Pos(), ErrUnsupportedExp, e)
	}
}
