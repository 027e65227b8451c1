package fussy

import (
	"github.com/charmbracelet/log"

	"github.com/jimeh/fussy/pkg/score"
)

// Options are the per-call knobs of the ranking pipeline. They travel
// explicitly with each call; there is no ambient state.
type Options struct {
	// MaxQueryLength is the query length above which scoring is skipped
	// and every candidate passes as always-relevant.
	MaxQueryLength int
	// MaxCandidateLimit is the pool size threshold that triggers
	// partitioning.
	MaxCandidateLimit int
	// IgnoreCase, when set, folds case during matching regardless of any
	// case policy the host applies elsewhere.
	IgnoreCase bool
	// MaxWordLength is the candidate length ceiling; longer candidates
	// are never handed to the scorer since scoring cost grows with
	// string length.
	MaxWordLength int
}

// DefaultOptions returns the builtin limits.
func DefaultOptions() Options {
	return Options{
		MaxQueryLength:    128,
		MaxCandidateLimit: 1000,
		IgnoreCase:        true,
		MaxWordLength:     1000,
	}
}

// Ranker invokes the scoring strategy over the to-be-scored subset and
// attaches score annotations to fresh candidate copies.
type Ranker struct {
	scorer score.Scorer
	opts   Options
}

// NewRanker builds a ranker around a scoring strategy. A nil scorer
// selects the process default (accelerated when available).
func NewRanker(scorer score.Scorer, opts Options) *Ranker {
	if scorer == nil {
		scorer = score.Default()
	}
	return &Ranker{scorer: scorer, opts: opts}
}

// Rank scores each candidate against the query.
//
// Two fast paths bypass scoring entirely: an empty query and a query
// longer than MaxQueryLength. Both mark every candidate as forced — no
// discriminating score exists, so highlighting treats each candidate as
// fully matched. On the normal path, candidates longer than
// MaxWordLength keep score zero and no indices; everything else goes
// through the scorer, with no-match results kept at score zero and
// flagged NoMatch.
func (r *Ranker) Rank(toScore []Candidate, query string) []Annotated {
	out := make([]Annotated, 0, len(toScore))

	if query == "" || len(query) > r.opts.MaxQueryLength {
		log.Debugf("skipping scoring for %d candidates (query length %d)", len(toScore), len(query))
		for _, c := range toScore {
			a := newAnnotated(c)
			a.Scored = true
			a.Forced = true
			out = append(out, a)
		}
		return out
	}

	for _, c := range toScore {
		a := newAnnotated(c)
		if r.opts.MaxWordLength > 0 && len(c.Text) > r.opts.MaxWordLength {
			out = append(out, a)
			continue
		}
		if m, ok := r.scorer.Match(c.Text, query, r.opts.IgnoreCase); ok {
			a.Score = m.Score
			a.Indices = m.Indices
			a.Scored = true
		} else {
			a.NoMatch = true
		}
		out = append(out, a)
	}
	return out
}
