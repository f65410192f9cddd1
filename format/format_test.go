package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/dhamidi/chartparse/parse"
	"github.com/google/go-cmp/cmp"
)

func scenario(t *testing.T) *parse.Result {
	t.Helper()
	pool := grammar.NewPool()
	pool.Add("VP", "N", "V")
	words := []grammar.Word{
		{Text: "a", Categories: []string{"N"}},
		{Text: "b", Categories: []string{"V"}},
	}
	return parse.New(pool, parse.WithStart("VP")).BottomUp(words)
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextEncoder(&buf, WithWidth(4)).Encode(scenario(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		"VP******",
		"    V***",
		"N***",
		"a**b**",
		"VP -> N * V",
		"size of constituent_list: 3",
		"size of arc_list: 1",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEncoderDefaultWidth(t *testing.T) {
	e := NewTextEncoder(nil, WithWidth(1))
	if e.width != DefaultWidth {
		t.Errorf("width = %d, want %d", e.width, DefaultWidth)
	}
}

func TestPadUsesDisplayWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"NP", 5, "NP***"},
		{"编辑", 5, "编辑*"},
		{"VP -> V * NP", 4, "VP -> V * NP"},
		{"", 0, ""},
	}
	for _, tt := range tests {
		if got := pad(tt.in, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(scenario(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got jsonResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}

	if got.Strategy != "bottom-up" || got.Start != "VP" {
		t.Errorf("strategy/start = %q/%q", got.Strategy, got.Start)
	}
	wantTrace := []jsonConstituent{
		{ID: 1, Category: "N", Start: 0, End: 1},
		{ID: 2, Category: "V", Start: 1, End: 2},
		{ID: 3, Category: "VP", Start: 0, End: 2, Rule: 1},
	}
	if diff := cmp.Diff(wantTrace, got.Trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	wantChart := []jsonArc{{Rule: 1, Dotted: "VP -> N * V", Start: 0, End: 1, Cursor: 1}}
	if diff := cmp.Diff(wantChart, got.Chart); diff != "" {
		t.Errorf("chart mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, got.Parses); diff != "" {
		t.Errorf("parses mismatch (-want +got):\n%s", diff)
	}
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(scenario(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		"word\t0\ta\tN",
		"word\t1\tb\tV",
		"constituent\t1\tN\t0\t1\t-",
		"constituent\t2\tV\t1\t2\t-",
		"constituent\t3\tVP\t0\t2\tVP -> N V",
		"arc\t1\tVP -> N * V\t0\t1\t1",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestKind(t *testing.T) {
	var k Kind
	if err := k.Set("json"); err != nil || k != JSON {
		t.Errorf("Set(json) = %v, %s", err, k)
	}
	if err := k.Set("xml"); err == nil {
		t.Error("Set(xml) should fail")
	}
	for _, kind := range []Kind{Text, Line, JSON} {
		if _, err := New(kind, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%s): %v", kind, err)
		}
	}
}
