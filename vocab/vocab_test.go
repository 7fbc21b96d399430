package vocab

import "testing"

func TestAddAssignsDenseIndexes(t *testing.T) {
	v := New()

	words := []string{"the", "quick", "brown", "the", "fox"}
	wantIdx := []int64{0, 1, 2, 0, 3}
	for i, w := range words {
		if got := v.Add(w); got != wantIdx[i] {
			t.Errorf("Add(%q) = %d, want %d", w, got, wantIdx[i])
		}
	}

	if v.Size() != 4 {
		t.Errorf("Size() = %d, want 4", v.Size())
	}
}

func TestAddCountsOccurrences(t *testing.T) {
	v := New()
	v.Add("the")
	v.Add("quick")
	v.Add("the")
	v.Add("the")

	e, ok := v.Lookup("the")
	if !ok {
		t.Fatal("Lookup(\"the\") not found")
	}
	if e.Count != 3 {
		t.Errorf("count for \"the\" = %d, want 3", e.Count)
	}

	if _, ok := v.Lookup("missing"); ok {
		t.Error("Lookup(\"missing\") should not be found")
	}
}

func TestWordFromIndexRoundTrip(t *testing.T) {
	v := New()
	for _, w := range []string{"alpha", "beta", "gamma"} {
		v.Add(w)
	}

	for word, e := range v.Snapshot() {
		if got := v.WordFromIndex(e.Index); got != word {
			t.Errorf("WordFromIndex(%d) = %q, want %q", e.Index, got, word)
		}
	}
}

func TestWordFromIndexNotFound(t *testing.T) {
	v := New()
	v.Add("only")

	if got := v.WordFromIndex(5); got != "" {
		t.Errorf("WordFromIndex(5) = %q, want \"\"", got)
	}
	if got := v.WordFromIndex(-1); got != "" {
		t.Errorf("WordFromIndex(-1) = %q, want \"\"", got)
	}
}

func TestSnapshotDetached(t *testing.T) {
	v := New()
	v.Add("one")

	snap := v.Snapshot()
	v.Add("one")
	v.Add("two")

	if len(snap) != 1 {
		t.Errorf("snapshot length = %d, want 1", len(snap))
	}
	if snap["one"].Count != 1 {
		t.Errorf("snapshot count = %d, want 1", snap["one"].Count)
	}
}
