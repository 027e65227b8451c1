// Package fussy is the core scoring-and-ranking pipeline for fuzzy
// completion: pattern compilation, cost-bounded candidate partitioning,
// per-candidate scoring, and the comparator that orders results.
package fussy

import "github.com/jimeh/fussy/pkg/highlight"

// Candidate is one entry in the pool being completed. Payload carries
// opaque host data (display annotations, frequencies) alongside the text
// and is never interpreted by the pipeline.
type Candidate struct {
	Text    string
	Payload any
}

// Annotated is a candidate plus everything one ranking call attached to
// it: the score, the matched indices, and the emphasis produced by
// highlighting. Input candidates are copied into Annotated values, the
// original pool is never mutated.
//
// Scored is true only for candidates that went through the scoring stage;
// passthrough candidates stay unscored and compare as score zero.
// Forced marks the fast paths where scoring was skipped and the whole
// candidate counts as matched. NoMatch marks candidates the scorer
// rejected outright; they stay in the result at score zero, and boundary
// layers that would rather omit them filter on this flag.
type Annotated struct {
	Candidate

	Score   int
	Scored  bool
	Forced  bool
	NoMatch bool
	Indices []int

	// Display is the candidate text with emphasis applied; equal to Text
	// until a highlight strategy runs.
	Display string
	Spans   []highlight.Span
}

// newAnnotated copies a candidate into its annotated form.
func newAnnotated(c Candidate) Annotated {
	return Annotated{Candidate: c, Display: c.Text}
}
