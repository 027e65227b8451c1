package score

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// NaiveScorer is the pure in-process fallback built on sahilm/fuzzy.
// It always folds case; the ignoreCase policy cannot tighten it further,
// only the accelerated scorer honors case-sensitive matching.
type NaiveScorer struct{}

// NewNaiveScorer creates the fallback scorer.
func NewNaiveScorer() *NaiveScorer {
	return &NaiveScorer{}
}

// Match scores text against query via fuzzy.Find over a single candidate.
func (s *NaiveScorer) Match(text, query string, ignoreCase bool) (Match, bool) {
	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return Match{}, false
	}
	m := matches[0]
	indices := append([]int(nil), m.MatchedIndexes...)
	sort.Ints(indices)
	return Match{Score: m.Score, Indices: indices}, true
}
