package parse

import (
	"github.com/dhamidi/chartparse/chart"
	"github.com/dhamidi/chartparse/grammar"
)

// TopDown parses words goal-first. Before any word is read, every rule
// reachable from the start category is predicted as a zero-width arc at
// position 0. Popped constituents then only extend existing arcs; each
// advanced arc goes through introduce so that its new next symbol is
// predicted in turn.
//
// A category that no prediction expects is never combined, even if some
// rule could build on it bottom-up.
func (p *Parser) TopDown(words []grammar.Word) *Result {
	r := p.newRun(words)
	for _, rule := range p.pool.Expanding(p.start) {
		r.introduce(chart.Arc{Rule: rule, Start: 0, End: 0, Cursor: 0})
	}
	p.log.Debugf("primed %d arcs for %s", r.chart.Len(), p.start)

	for {
		c, ok := r.next()
		if !ok {
			break
		}
		r.extend(c, r.introduce)
	}
	return r.result(TopDown, words)
}

// introduce adds a to the chart and, when it is new, predicts a zero-width
// arc at a.End for every rule expanding a's next symbol, recursively.
//
// The recursion runs on an explicit stack. Children are pushed in reverse so
// they are visited in rule order, giving the same chart order as a
// depth-first recursive walk. The chart's dedup is the visited set, which
// also stops left-recursive and mutually recursive expansions.
func (r *run) introduce(a chart.Arc) bool {
	if !r.add(a) {
		return false
	}
	stack := r.predictions(nil, a)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.add(top) {
			stack = r.predictions(stack, top)
		}
	}
	return true
}

// predictions pushes the zero-width predictions for a's next symbol onto
// stack, last rule first.
func (r *run) predictions(stack []chart.Arc, a chart.Arc) []chart.Arc {
	expanding := r.p.pool.Expanding(a.Next())
	for i := len(expanding) - 1; i >= 0; i-- {
		stack = append(stack, predict(expanding[i], a.End))
	}
	return stack
}

func predict(rule *grammar.Rule, pos int) chart.Arc {
	return chart.Arc{Rule: rule, Start: pos, End: pos, Cursor: 0}
}
