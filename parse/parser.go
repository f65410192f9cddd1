// Package parse implements chart parsing of context-free grammars with two
// search strategies over a shared chart and agenda.
//
// Bottom-up parsing starts from the words: every completed constituent
// starts the rules whose first right-hand symbol it matches and extends the
// arcs that end where it begins. Top-down parsing first predicts every rule
// reachable from the goal category, then consumes words by extending those
// predictions only.
//
// Neither strategy detects cyclic grammars. Unit cycles such as A -> B,
// B -> A make both strategies push constituents forever; callers that accept
// untrusted grammars must bound the run themselves.
package parse

import (
	"fmt"

	"github.com/dhamidi/chartparse/chart"
	"github.com/dhamidi/chartparse/grammar"
	"github.com/tliron/commonlog"
)

// Strategy selects a search order. It implements pflag.Value.
type Strategy int

const (
	BottomUp Strategy = iota
	TopDown
)

func (s Strategy) String() string {
	switch s {
	case BottomUp:
		return "bottom-up"
	case TopDown:
		return "top-down"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Set parses a strategy name.
func (s *Strategy) Set(v string) error {
	switch v {
	case "bottom-up", "bottomup", "bu":
		*s = BottomUp
	case "top-down", "topdown", "td":
		*s = TopDown
	default:
		return fmt.Errorf("unknown strategy %q (want bottom-up or top-down)", v)
	}
	return nil
}

// Type names the flag type in help output.
func (s *Strategy) Type() string {
	return "strategy"
}

// Result is everything a parse run produces: the constituents in the order
// they were popped, the words that were parsed and the final chart.
type Result struct {
	Strategy Strategy
	Start    string
	Trace    chart.Trace
	Words    []grammar.Word
	Chart    *chart.Chart
}

// Parses returns the constituents of the start category spanning the whole
// sentence, in discovery order.
func (r *Result) Parses() []*chart.Constituent {
	return r.Trace.Spanning(r.Start, 0, len(r.Words))
}

// Accepted reports whether at least one parse spans the whole sentence.
func (r *Result) Accepted() bool {
	return len(r.Parses()) > 0
}

// Option configures a Parser.
type Option func(*Parser)

// WithStart sets the goal category used by top-down prediction and by
// Result.Parses.
func WithStart(category string) Option {
	return func(p *Parser) {
		p.start = category
	}
}

// WithSequence draws constituent identities from ids, so identities stay
// unique across several runs.
func WithSequence(ids *grammar.Sequence) Option {
	return func(p *Parser) {
		p.ids = ids
	}
}

// WithLogger replaces the package logger.
func WithLogger(logger commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = logger
	}
}

// Parser runs either strategy over a rule pool. The pool must not be
// modified while a run is in progress. A Parser is not safe for concurrent
// use because runs share its identity sequence.
type Parser struct {
	pool  *grammar.Pool
	start string
	ids   *grammar.Sequence
	log   commonlog.Logger
}

// New creates a parser for pool.
func New(pool *grammar.Pool, opts ...Option) *Parser {
	p := &Parser{
		pool:  pool,
		start: grammar.DefaultStart,
		log:   commonlog.GetLogger("chartparse.parse"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ids == nil {
		p.ids = &grammar.Sequence{}
	}
	return p
}

// Start returns the goal category.
func (p *Parser) Start() string {
	return p.start
}

// Run parses words with the given strategy.
func (p *Parser) Run(s Strategy, words []grammar.Word) *Result {
	switch s {
	case BottomUp:
		return p.BottomUp(words)
	case TopDown:
		return p.TopDown(words)
	}
	panic(fmt.Sprintf("parse: unknown strategy %d", int(s)))
}

// run holds the state of one parse invocation.
type run struct {
	p      *Parser
	agenda *chart.Agenda
	chart  *chart.Chart
	trace  chart.Trace
}

func (p *Parser) newRun(words []grammar.Word) *run {
	return &run{
		p:      p,
		agenda: chart.NewAgenda(words, p.ids),
		chart:  chart.New(),
	}
}

// next pops the next constituent and records it in the trace.
func (r *run) next() (*chart.Constituent, bool) {
	if r.agenda.Phase() == chart.NeedWords {
		r.p.log.Debugf("seed word %d", r.agenda.Position())
	}
	c, ok := r.agenda.Next()
	if !ok {
		return nil, false
	}
	r.trace = append(r.trace, c)
	r.p.log.Debugf("pop %s", c)
	return c, true
}

// complete pushes the constituent produced by rule over [start, end).
func (r *run) complete(rule *grammar.Rule, start, end int) {
	c := r.agenda.New(rule.Left, start, end, rule)
	r.agenda.Push(c)
	r.p.log.Debugf("push %s via %s", c, rule)
}

// add inserts a into the chart and reports whether it was novel.
func (r *run) add(a chart.Arc) bool {
	if !r.chart.Add(a) {
		return false
	}
	r.p.log.Debugf("arc %s [%d,%d)", a, a.Start, a.End)
	return true
}

func (r *run) result(s Strategy, words []grammar.Word) *Result {
	r.p.log.Infof("%s: %d constituents, %d arcs", s, len(r.trace), r.chart.Len())
	return &Result{
		Strategy: s,
		Start:    r.p.start,
		Trace:    r.trace,
		Words:    words,
		Chart:    r.chart,
	}
}
