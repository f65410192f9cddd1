// Package lex segments sentence text into lexicon words.
package lex

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chartparse.lex")

var ErrUnknownWord = errors.New("unknown word")

// Position represents a location in sentence text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error reports text that no lexicon entry matches.
type Error struct {
	Position Position
	Text     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Position, ErrUnknownWord, e.Text)
}

func (e *Error) Unwrap() error {
	return ErrUnknownWord
}

// Lexer splits text into words. Whitespace separates tokens; within a run of
// non-space text the longest lexicon entry at the current offset wins, so
// unsegmented input such as "老谢在编辑" is split without spaces.
type Lexer struct {
	lexicon *grammar.Lexicon
	input   string
	pos     int
	line    int
	column  int
}

// NewLexer creates a lexer over input.
func NewLexer(lexicon *grammar.Lexicon, input string) *Lexer {
	return &Lexer{
		lexicon: lexicon,
		input:   input,
		line:    1,
		column:  1,
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *Lexer) advance(n int) {
	end := l.pos + n
	for l.pos < end {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.advance(size)
	}
}

// segmentEnd returns the offset of the next whitespace after the current
// position.
func (l *Lexer) segmentEnd() int {
	for i, r := range l.input[l.pos:] {
		if unicode.IsSpace(r) {
			return l.pos + i
		}
	}
	return len(l.input)
}

// Next returns the next word. ok is false at end of input.
func (l *Lexer) Next() (w grammar.Word, ok bool, err error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return grammar.Word{}, false, nil
	}

	start := l.Position()
	end := l.segmentEnd()

	limit := end
	if l.pos+l.lexicon.Longest() < limit {
		limit = l.pos + l.lexicon.Longest()
	}
	for n := limit; n > l.pos; n-- {
		if n < len(l.input) && !utf8.RuneStart(l.input[n]) {
			continue
		}
		if w, found := l.lexicon.Lookup(l.input[l.pos:n]); found {
			l.advance(n - l.pos)
			log.Debugf("%s: %s", start, w)
			return w, true, nil
		}
	}

	return grammar.Word{}, false, &Error{Position: start, Text: l.input[l.pos:end]}
}

// Tokenize reads all words from the input.
func (l *Lexer) Tokenize() ([]grammar.Word, error) {
	var words []grammar.Word
	for {
		w, ok, err := l.Next()
		if err != nil {
			return words, err
		}
		if !ok {
			return words, nil
		}
		words = append(words, w)
	}
}

// Tokenize segments text against lexicon.
func Tokenize(lexicon *grammar.Lexicon, text string) ([]grammar.Word, error) {
	return NewLexer(lexicon, text).Tokenize()
}

// Fields looks up tokens that are already split, such as command-line
// arguments. Each token must be a lexicon entry.
func Fields(lexicon *grammar.Lexicon, tokens []string) ([]grammar.Word, error) {
	words := make([]grammar.Word, 0, len(tokens))
	for i, tok := range tokens {
		w, ok := lexicon.Lookup(tok)
		if !ok {
			return nil, fmt.Errorf("token %d: %w %q", i+1, ErrUnknownWord, tok)
		}
		words = append(words, w)
	}
	return words, nil
}
