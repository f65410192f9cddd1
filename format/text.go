package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhamidi/chartparse/chart"
	"github.com/dhamidi/chartparse/parse"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the number of columns given to one sentence position.
const DefaultWidth = 20

var parseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// TextOption configures a TextEncoder.
type TextOption func(*TextEncoder)

// WithWidth sets the columns per sentence position. Values below 2 are
// ignored.
func WithWidth(width int) TextOption {
	return func(e *TextEncoder) {
		if width >= 2 {
			e.width = width
		}
	}
}

// WithColor highlights the constituents that parse the whole sentence.
func WithColor() TextOption {
	return func(e *TextEncoder) {
		e.color = true
	}
}

// TextEncoder lays a result out against the sentence: constituents most
// recent first, then the words, then the chart, each item indented to its
// start position and padded with '*' across its span.
type TextEncoder struct {
	w      io.Writer
	width  int
	color  bool
	result *parse.Result
}

func NewTextEncoder(w io.Writer, opts ...TextOption) *TextEncoder {
	e := &TextEncoder{w: w, width: DefaultWidth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *TextEncoder) Encode(r *parse.Result) error {
	e.result = r
	return encode(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.result

	parses := make(map[*chart.Constituent]bool)
	for _, c := range r.Parses() {
		parses[c] = true
	}

	for _, c := range r.Trace.Reversed() {
		line := e.spanLine(c.Category, c.Start, c.End)
		if e.color && parses[c] {
			line = strings.Repeat(" ", c.Start*e.width) + parseStyle.Render(strings.TrimLeft(line, " "))
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	for _, w := range r.Words {
		sb.WriteString(pad(w.Text, e.width-1))
	}
	sb.WriteByte('\n')

	for _, a := range r.Chart.Arcs() {
		sb.WriteString(e.spanLine(a.String(), a.Start, a.End))
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "size of constituent_list: %d\n", len(r.Trace))
	fmt.Fprintf(&sb, "size of arc_list: %d\n", r.Chart.Len())

	return []byte(sb.String()), nil
}

func (e *TextEncoder) spanLine(label string, start, end int) string {
	return strings.Repeat(" ", start*e.width) + pad(label, (end-start)*e.width)
}

// pad fills s with '*' up to width display columns. Longer strings are kept
// whole.
func pad(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat("*", n)
}
