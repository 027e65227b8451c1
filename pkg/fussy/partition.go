package fussy

import "sort"

// Partition bounds the scoring workload for large pools. Below the limit
// the whole pool is scored. At or above it, candidates are stable-sorted
// ascending by text length (shorter candidates are cheaper to score and
// heuristically more likely to be relevant) and the first limit of them
// become the scored subset; the rest pass through unscored in post-sort
// order. A limit of zero or less scores nothing.
//
// No candidate is ever dropped or duplicated: the two returned slices
// together are a permutation of the pool.
func Partition(pool []Candidate, limit int) (toScore, passthrough []Candidate) {
	if limit <= 0 {
		passthrough = make([]Candidate, len(pool))
		copy(passthrough, pool)
		return nil, passthrough
	}
	if len(pool) < limit {
		toScore = make([]Candidate, len(pool))
		copy(toScore, pool)
		return toScore, nil
	}
	sorted := make([]Candidate, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) < len(sorted[j].Text)
	})
	return sorted[:limit:limit], sorted[limit:]
}
