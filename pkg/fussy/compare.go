package fussy

import "sort"

// Compare is the total order over annotated candidates: score descending,
// shorter text first on ties. Unscored candidates compare as score zero.
// Equal score and equal length may land in either relative order.
// Returns a negative value when a precedes b.
func Compare(a, b Annotated) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}
	return len(a.Text) - len(b.Text)
}

// Sort orders annotated candidates best-first in place.
func Sort(list []Annotated) {
	sort.SliceStable(list, func(i, j int) bool {
		return Compare(list[i], list[j]) < 0
	})
}
