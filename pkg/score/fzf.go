package score

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FzfScorer scores candidates with the fzf V2 matching algorithm.
// The slab is reused across calls, which makes a single FzfScorer unsafe
// for concurrent use; the ranking pipeline is synchronous so this is fine.
type FzfScorer struct {
	slab *util.Slab
}

// NewFzfScorer creates an accelerated scorer with a preallocated slab.
func NewFzfScorer() *FzfScorer {
	return &FzfScorer{slab: util.MakeSlab(64, 4096)}
}

// Match runs FuzzyMatchV2 and converts its result to the Scorer contract.
func (s *FzfScorer) Match(text, query string, ignoreCase bool) (Match, bool) {
	pattern := []rune(query)
	if ignoreCase {
		// fzf expects a lowered pattern when case folding is on.
		pattern = []rune(strings.ToLower(query))
	}
	chars := util.ToChars([]byte(text))
	result, pos := algo.FuzzyMatchV2(!ignoreCase, true, true, &chars, pattern, true, s.slab)
	if result.Start < 0 {
		return Match{}, false
	}

	var indices []int
	if pos != nil && len(*pos) > 0 {
		// fzf reports positions in reverse.
		indices = append(indices, *pos...)
		sort.Ints(indices)
	} else {
		for i := result.Start; i < result.End; i++ {
			indices = append(indices, i)
		}
	}
	return Match{Score: result.Score, Indices: indices}, true
}
