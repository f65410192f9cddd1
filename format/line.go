package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/chartparse/parse"
)

// LineEncoder writes one tab-separated record per word, constituent and arc,
// in that order.
type LineEncoder struct {
	w      io.Writer
	result *parse.Result
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(r *parse.Result) error {
	e.result = r
	return encode(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.result

	for i, w := range r.Words {
		fmt.Fprintf(&sb, "word\t%d\t%s\t%s\n", i, w.Text, strings.Join(w.Categories, " "))
	}

	for _, c := range r.Trace {
		rule := "-"
		if c.Rule != nil {
			rule = c.Rule.String()
		}
		fmt.Fprintf(&sb, "constituent\t%d\t%s\t%d\t%d\t%s\n", c.ID, c.Category, c.Start, c.End, rule)
	}

	for _, a := range r.Chart.Arcs() {
		fmt.Fprintf(&sb, "arc\t%d\t%s\t%d\t%d\t%d\n", a.Rule.ID, a, a.Start, a.End, a.Cursor)
	}

	return []byte(sb.String()), nil
}
