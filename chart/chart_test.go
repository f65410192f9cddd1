package chart

import (
	"testing"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/google/go-cmp/cmp"
)

func TestChartDeduplication(t *testing.T) {
	pool := grammar.NewPool()
	r := pool.Add("VP", "V", "NP")
	c := New()

	if !c.Add(Arc{Rule: r, Start: 0, End: 1, Cursor: 1}) {
		t.Error("first arc should be added")
	}
	if c.Add(Arc{Rule: r, Start: 0, End: 1, Cursor: 1}) {
		t.Error("duplicate arc should not be added")
	}
	if !c.Add(Arc{Rule: r, Start: 0, End: 1, Cursor: 0}) {
		t.Error("arc with different cursor should be added")
	}
	if !c.Add(Arc{Rule: r, Start: 1, End: 1, Cursor: 0}) {
		t.Error("arc with different start should be added")
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 arcs, got %d", c.Len())
	}
	if !c.Contains(Arc{Rule: r, Start: 1, End: 1, Cursor: 0}) {
		t.Error("Contains missed an inserted arc")
	}
}

func TestChartDeduplicatesByRuleIdentity(t *testing.T) {
	pool := grammar.NewPool()
	a := pool.Add("NP", "N", "N")
	b := pool.Add("NP", "N", "N")
	c := New()

	c.Add(Arc{Rule: a, Start: 0, End: 1, Cursor: 1})
	if !c.Add(Arc{Rule: b, Start: 0, End: 1, Cursor: 1}) {
		t.Error("structurally identical rules must be distinct chart entries")
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 arcs, got %d", c.Len())
	}
}

func TestChartKeepsInsertionOrder(t *testing.T) {
	pool := grammar.NewPool()
	s := pool.Add("S", "NP", "VP")
	np := pool.Add("NP", "ADJ", "N")
	c := New()
	c.Add(Arc{Rule: np, Start: 0, End: 0})
	c.Add(Arc{Rule: s, Start: 0, End: 0})
	c.Add(Arc{Rule: np, Start: 0, End: 0})

	var got []string
	for _, a := range c.Arcs() {
		got = append(got, a.String())
	}
	want := []string{"NP ->  * ADJ N", "S ->  * NP VP"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("arcs mismatch (-want +got):\n%s", diff)
	}
}

func TestChartEndingVisitsArcsAddedDuringScan(t *testing.T) {
	pool := grammar.NewPool()
	r := pool.Add("A", "B", "C")
	c := New()
	c.Add(Arc{Rule: r, Start: 0, End: 2})

	var visited []Arc
	c.Ending(2, func(a Arc) {
		visited = append(visited, a)
		if a.Start == 0 {
			c.Add(Arc{Rule: r, Start: 1, End: 2})
			c.Add(Arc{Rule: r, Start: 2, End: 3})
		}
	})
	if len(visited) != 2 {
		t.Fatalf("visited %d arcs, want 2", len(visited))
	}
	if visited[1].Start != 1 {
		t.Errorf("second visited arc starts at %d, want 1", visited[1].Start)
	}
}

func TestArc(t *testing.T) {
	pool := grammar.NewPool()
	r := pool.Add("VP", "V", "NP")
	a := Arc{Rule: r, Start: 2, End: 3, Cursor: 1}

	if a.String() != "VP -> V * NP" {
		t.Errorf("String() = %q", a.String())
	}
	if a.Next() != "NP" || !a.Last() || a.Complete() {
		t.Errorf("Next=%q Last=%v Complete=%v", a.Next(), a.Last(), a.Complete())
	}
	b := a.Advance(5)
	if !b.Complete() || b.Start != 2 || b.End != 5 || b.Cursor != 2 {
		t.Errorf("Advance(5) = %+v", b)
	}
}

func TestArcNextPanicsWhenComplete(t *testing.T) {
	pool := grammar.NewPool()
	a := Arc{Rule: pool.Add("NP", "N"), Cursor: 1}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	a.Next()
}

func TestAgendaPhases(t *testing.T) {
	words := []grammar.Word{
		{Text: "a", Categories: []string{"N", "V"}},
		{Text: "b", Categories: []string{"V"}},
	}
	var ids grammar.Sequence
	ag := NewAgenda(words, &ids)

	if ag.Phase() != NeedWords || ag.Position() != 0 {
		t.Fatalf("phase = %s at %d, want need-words at 0", ag.Phase(), ag.Position())
	}
	ag.Seed()
	if ag.Phase() != Pending || ag.Len() != 2 || ag.Position() != 1 {
		t.Fatalf("after seed: phase = %s, len %d, pos %d", ag.Phase(), ag.Len(), ag.Position())
	}

	top := ag.Pop()
	if top.Category != "V" || top.Start != 0 || top.End != 1 || !top.Lexical() {
		t.Errorf("top = %s, want lexical V[0,1)", top)
	}
	if top.ID != 2 {
		t.Errorf("top id = %d, want 2", top.ID)
	}
	ag.Pop()

	var order []string
	for {
		c, ok := ag.Next()
		if !ok {
			break
		}
		order = append(order, c.String())
	}
	if diff := cmp.Diff([]string{"V[1,2)"}, order); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
	if ag.Phase() != Exhausted {
		t.Errorf("phase = %s, want exhausted", ag.Phase())
	}
}

func TestAgendaSeedPanicsWhenPending(t *testing.T) {
	var ids grammar.Sequence
	ag := NewAgenda([]grammar.Word{{Text: "a", Categories: []string{"N"}}}, &ids)
	ag.Push(ag.New("X", 0, 1, nil))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ag.Seed()
}

func TestTrace(t *testing.T) {
	tr := Trace{
		{ID: 1, Category: "N", Start: 0, End: 1},
		{ID: 2, Category: "S", Start: 0, End: 2},
		{ID: 3, Category: "S", Start: 0, End: 1},
	}
	rev := tr.Reversed()
	if rev[0].ID != 3 || rev[2].ID != 1 {
		t.Errorf("Reversed() = %v", rev)
	}
	if got := tr.Spanning("S", 0, 2); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Spanning(S, 0, 2) = %v", got)
	}
}
