package parse

import (
	"github.com/dhamidi/chartparse/chart"
	"github.com/dhamidi/chartparse/grammar"
)

// BottomUp parses words data-first. Each popped constituent starts every rule
// whose first right-hand symbol is its category, then extends every arc
// ending where it begins. Rules and arcs are visited in declaration and
// insertion order, which fixes the order of the trace.
func (p *Parser) BottomUp(words []grammar.Word) *Result {
	r := p.newRun(words)
	for {
		c, ok := r.next()
		if !ok {
			break
		}
		r.applyRules(c)
		r.extend(c, r.add)
	}
	return r.result(BottomUp, words)
}

// applyRules starts every rule whose first symbol matches c. Single-symbol
// rules complete at once and never enter the chart.
func (r *run) applyRules(c *chart.Constituent) {
	for _, rule := range r.p.pool.Rules() {
		if rule.First() != c.Category {
			continue
		}
		if rule.Len() == 1 {
			r.complete(rule, c.Start, c.End)
			continue
		}
		r.add(chart.Arc{Rule: rule, Start: c.Start, End: c.End, Cursor: 1})
	}
}

// extend advances every arc that ends where c starts and expects c's
// category next. A completed arc becomes a constituent on the agenda; an
// advanced arc is handed to advance.
func (r *run) extend(c *chart.Constituent, advance func(chart.Arc) bool) {
	r.chart.Ending(c.Start, func(a chart.Arc) {
		if a.Next() != c.Category {
			return
		}
		if a.Last() {
			r.complete(a.Rule, a.Start, c.End)
			return
		}
		advance(a.Advance(c.End))
	})
}
