package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/chartparse/chart"
	"github.com/dhamidi/chartparse/parse"
)

type JSONEncoder struct {
	w      io.Writer
	result *parse.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r *parse.Result) error {
	e.result = r
	return encode(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(e.buildResultData(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type jsonResult struct {
	Strategy string            `json:"strategy"`
	Start    string            `json:"start"`
	Words    []jsonWord        `json:"words"`
	Trace    []jsonConstituent `json:"trace"`
	Chart    []jsonArc         `json:"chart"`
	Parses   []int             `json:"parses"`
}

type jsonWord struct {
	Text       string   `json:"text"`
	Categories []string `json:"categories"`
}

type jsonConstituent struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Rule     int    `json:"rule,omitempty"`
}

type jsonArc struct {
	Rule   int    `json:"rule"`
	Dotted string `json:"dotted"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Cursor int    `json:"cursor"`
}

func (e *JSONEncoder) buildResultData() jsonResult {
	r := e.result
	data := jsonResult{
		Strategy: r.Strategy.String(),
		Start:    r.Start,
		Words:    make([]jsonWord, len(r.Words)),
		Trace:    make([]jsonConstituent, len(r.Trace)),
		Chart:    make([]jsonArc, 0, r.Chart.Len()),
		Parses:   []int{},
	}
	for i, w := range r.Words {
		data.Words[i] = jsonWord{Text: w.Text, Categories: w.Categories}
	}
	for i, c := range r.Trace {
		data.Trace[i] = buildConstituent(c)
	}
	for _, a := range r.Chart.Arcs() {
		data.Chart = append(data.Chart, jsonArc{
			Rule:   a.Rule.ID,
			Dotted: a.String(),
			Start:  a.Start,
			End:    a.End,
			Cursor: a.Cursor,
		})
	}
	for _, c := range r.Parses() {
		data.Parses = append(data.Parses, c.ID)
	}
	return data
}

func buildConstituent(c *chart.Constituent) jsonConstituent {
	jc := jsonConstituent{
		ID:       c.ID,
		Category: c.Category,
		Start:    c.Start,
		End:      c.End,
	}
	if c.Rule != nil {
		jc.Rule = c.Rule.ID
	}
	return jc
}
