// Package score provides the subsequence scoring strategies used to rank
// completion candidates against a typed query.
//
// Two interchangeable scorers exist: an accelerated one built on the fzf
// matching algorithm and a pure fallback built on sahilm/fuzzy. Callers
// normally go through Default, which probes the accelerated scorer once per
// process and falls back transparently if the probe fails.
package score

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Match is the result of scoring one candidate against a query.
// Indices are strictly increasing character positions in the candidate
// that the query consumed.
type Match struct {
	Score   int
	Indices []int
}

// Scorer ranks a single candidate against a query. The second return is
// false when the query is not a subsequence of the text. Implementations
// never fail for well-formed strings.
type Scorer interface {
	Match(text, query string, ignoreCase bool) (Match, bool)
}

var (
	selectOnce    sync.Once
	defaultScorer Scorer
)

// Default returns the process-wide scorer. The accelerated matcher is
// probed exactly once with a known input; selection is cached for the
// process lifetime.
func Default() Scorer {
	selectOnce.Do(func() {
		accel := NewFzfScorer()
		m, ok := accel.Match("probe", "pb", true)
		if ok && m.Score > 0 && len(m.Indices) == 2 {
			defaultScorer = accel
			return
		}
		log.Debug("accelerated scorer probe failed, using fallback")
		defaultScorer = NewNaiveScorer()
	})
	return defaultScorer
}
