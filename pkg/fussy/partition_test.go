package fussy

import "testing"

func candidates(texts ...string) []Candidate {
	out := make([]Candidate, len(texts))
	for i, t := range texts {
		out[i] = Candidate{Text: t}
	}
	return out
}

func TestPartitionSmallPool(t *testing.T) {
	pool := candidates("alpha", "beta", "gamma")

	toScore, passthrough := Partition(pool, 10)

	if len(toScore) != len(pool) {
		t.Errorf("expected all %d candidates scored, got %d", len(pool), len(toScore))
	}
	if len(passthrough) != 0 {
		t.Errorf("expected empty passthrough, got %d", len(passthrough))
	}
	// Original order preserved when no partitioning happens.
	for i := range pool {
		if toScore[i].Text != pool[i].Text {
			t.Errorf("order changed at %d: got %q want %q", i, toScore[i].Text, pool[i].Text)
		}
	}
}

func TestPartitionLargePool(t *testing.T) {
	pool := candidates("dddd", "a", "ccc", "bb")

	toScore, passthrough := Partition(pool, 2)

	if len(toScore) != 2 {
		t.Fatalf("expected 2 scored candidates, got %d", len(toScore))
	}
	// Shortest candidates selected for scoring.
	if toScore[0].Text != "a" || toScore[1].Text != "bb" {
		t.Errorf("expected two shortest selected, got %q, %q", toScore[0].Text, toScore[1].Text)
	}
	// Remainder passes through in post-sort order.
	if len(passthrough) != 2 || passthrough[0].Text != "ccc" || passthrough[1].Text != "dddd" {
		t.Errorf("unexpected passthrough: %v", passthrough)
	}
}

func TestPartitionNeverDropsCandidates(t *testing.T) {
	pool := candidates("one", "two", "three", "four", "five", "six", "seven")

	toScore, passthrough := Partition(pool, 3)

	seen := make(map[string]int)
	for _, c := range toScore {
		seen[c.Text]++
	}
	for _, c := range passthrough {
		seen[c.Text]++
	}
	if len(seen) != len(pool) {
		t.Fatalf("expected %d distinct candidates, got %d", len(pool), len(seen))
	}
	for _, c := range pool {
		if seen[c.Text] != 1 {
			t.Errorf("candidate %q appears %d times", c.Text, seen[c.Text])
		}
	}
}

func TestPartitionZeroLimit(t *testing.T) {
	pool := candidates("alpha", "beta")

	toScore, passthrough := Partition(pool, 0)

	if len(toScore) != 0 {
		t.Errorf("expected nothing scored with zero limit, got %d", len(toScore))
	}
	if len(passthrough) != len(pool) {
		t.Errorf("expected everything passed through, got %d", len(passthrough))
	}
}

func TestPartitionDoesNotMutatePool(t *testing.T) {
	pool := candidates("dddd", "a", "ccc", "bb")

	Partition(pool, 2)

	want := []string{"dddd", "a", "ccc", "bb"}
	for i, c := range pool {
		if c.Text != want[i] {
			t.Errorf("pool mutated at %d: got %q want %q", i, c.Text, want[i])
		}
	}
}

func TestPartitionStableOnEqualLengths(t *testing.T) {
	pool := candidates("bb", "aa", "cc", "dd")

	toScore, _ := Partition(pool, 4)

	// Equal lengths keep their original relative order.
	want := []string{"bb", "aa", "cc", "dd"}
	for i, c := range toScore {
		if c.Text != want[i] {
			t.Errorf("stability broken at %d: got %q want %q", i, c.Text, want[i])
		}
	}
}
