package fussy

import (
	"strings"
	"testing"

	"github.com/jimeh/fussy/pkg/score"
)

// subseqScorer is a deterministic stand-in for the real scoring
// strategies: query characters must appear in order, score favors
// shorter candidates.
type subseqScorer struct {
	calls int
}

func (s *subseqScorer) Match(text, query string, ignoreCase bool) (score.Match, bool) {
	s.calls++
	t, q := text, query
	if ignoreCase {
		t, q = strings.ToLower(text), strings.ToLower(query)
	}
	var indices []int
	qi := 0
	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] == q[qi] {
			indices = append(indices, i)
			qi++
		}
	}
	if qi < len(q) {
		return score.Match{}, false
	}
	return score.Match{Score: 100 - len(text), Indices: indices}, true
}

func TestRankEmptyQuerySkipsScoring(t *testing.T) {
	scorer := &subseqScorer{}
	ranker := NewRanker(scorer, DefaultOptions())

	ranked := ranker.Rank(candidates("apple", "banana"), "")

	if scorer.calls != 0 {
		t.Errorf("expected no scorer calls for empty query, got %d", scorer.calls)
	}
	for _, a := range ranked {
		if !a.Forced || !a.Scored {
			t.Errorf("candidate %q should be force-matched", a.Text)
		}
	}
}

func TestRankOverlongQuerySkipsScoring(t *testing.T) {
	scorer := &subseqScorer{}
	opts := DefaultOptions()
	opts.MaxQueryLength = 4
	ranker := NewRanker(scorer, opts)

	ranked := ranker.Rank(candidates("apple", "banana"), "apples")

	if scorer.calls != 0 {
		t.Errorf("expected no scorer calls for overlong query, got %d", scorer.calls)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected both candidates returned, got %d", len(ranked))
	}
	for _, a := range ranked {
		if !a.Forced {
			t.Errorf("candidate %q should be force-matched", a.Text)
		}
	}
}

func TestRankOverlongCandidateNotScored(t *testing.T) {
	scorer := &subseqScorer{}
	opts := DefaultOptions()
	opts.MaxWordLength = 5
	ranker := NewRanker(scorer, opts)

	ranked := ranker.Rank(candidates("apple", "applesauce"), "ap")

	if scorer.calls != 1 {
		t.Errorf("expected exactly 1 scorer call, got %d", scorer.calls)
	}
	var long Annotated
	for _, a := range ranked {
		if a.Text == "applesauce" {
			long = a
		}
	}
	if long.Scored || long.Score != 0 || len(long.Indices) != 0 {
		t.Errorf("overlong candidate should stay unscored: %+v", long)
	}
	if long.NoMatch {
		t.Error("length ceiling is not a scorer rejection")
	}
}

func TestRankScoresAndAnnotates(t *testing.T) {
	ranker := NewRanker(&subseqScorer{}, DefaultOptions())

	ranked := ranker.Rank(candidates("apple", "banana", "apricot"), "ap")

	byText := make(map[string]Annotated)
	for _, a := range ranked {
		byText[a.Text] = a
	}

	apple := byText["apple"]
	if !apple.Scored || apple.Score <= 0 {
		t.Errorf("apple should have a positive score, got %+v", apple)
	}
	if len(apple.Indices) != 2 || apple.Indices[0] != 0 || apple.Indices[1] != 1 {
		t.Errorf("unexpected apple indices: %v", apple.Indices)
	}

	banana := byText["banana"]
	if banana.Scored || banana.Score != 0 {
		t.Errorf("banana should not match 'ap', got %+v", banana)
	}
	if !banana.NoMatch {
		t.Error("rejected candidate should be flagged NoMatch")
	}
	if apple.NoMatch {
		t.Error("matched candidate must not be flagged NoMatch")
	}

	apricot := byText["apricot"]
	if !apricot.Scored || apricot.Score <= 0 {
		t.Errorf("apricot should have a positive score, got %+v", apricot)
	}
}

func TestRankPreservesPayload(t *testing.T) {
	ranker := NewRanker(&subseqScorer{}, DefaultOptions())
	pool := []Candidate{{Text: "apple", Payload: 42}}

	ranked := ranker.Rank(pool, "ap")

	if len(ranked) != 1 {
		t.Fatalf("expected 1 result, got %d", len(ranked))
	}
	if got, ok := ranked[0].Payload.(int); !ok || got != 42 {
		t.Errorf("payload lost or changed: %v", ranked[0].Payload)
	}
	// Input pool stays untouched.
	if pool[0].Payload.(int) != 42 {
		t.Error("input pool mutated")
	}
}

func TestRankCaseFolding(t *testing.T) {
	scorer := &subseqScorer{}
	opts := DefaultOptions()
	opts.IgnoreCase = true
	ranker := NewRanker(scorer, opts)

	ranked := ranker.Rank(candidates("Apple"), "ap")

	if !ranked[0].Scored {
		t.Error("expected case-folded match against 'Apple'")
	}

	opts.IgnoreCase = false
	strict := NewRanker(scorer, opts)
	ranked = strict.Rank(candidates("Apple"), "ap")
	if ranked[0].Scored {
		t.Error("expected no match with case folding off")
	}
}
