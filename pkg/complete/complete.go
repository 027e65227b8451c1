// Package complete implements the host completion protocol on top of the
// fussy ranking pipeline: prefix expansion, the full score-and-highlight
// flow, and the sort hook fed to the host's metadata mechanism.
package complete

import (
	"github.com/jimeh/fussy/pkg/fussy"
	"github.com/jimeh/fussy/pkg/highlight"
	"github.com/jimeh/fussy/pkg/score"
)

// Predicate filters candidates before the pipeline runs. A nil predicate
// admits everything.
type Predicate func(fussy.Candidate) bool

// Context carries the per-call state the adapter needs from the host.
// Everything is explicit; the adapter never reads ambient process state.
type Context struct {
	// Source classifies the candidate pool for highlight dispatch.
	Source fussy.Source
	// Cursor is the position within the typed input.
	Cursor int
	// FilterActive reports whether the interactive input area is
	// non-empty. The sort hook only installs its comparator when some
	// filtering is evidently happening; this mirrors the host's own
	// heuristic and is a documented approximation, not a guarantee.
	FilterActive bool
}

// Adapter orchestrates pattern compilation, partitioning, ranking and
// highlighting for one host.
type Adapter struct {
	ranker *fussy.Ranker
	opts   fussy.Options
	styles highlight.Styles

	// highlightOff disables the highlighting stage entirely.
	highlightOff bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithScorer overrides the scoring strategy.
func WithScorer(s score.Scorer) Option {
	return func(a *Adapter) {
		a.ranker = fussy.NewRanker(s, a.opts)
	}
}

// WithStyles overrides the emphasis styling.
func WithStyles(styles highlight.Styles) Option {
	return func(a *Adapter) {
		a.styles = styles
	}
}

// WithoutHighlight turns the highlighting stage into a no-op passthrough.
func WithoutHighlight() Option {
	return func(a *Adapter) {
		a.highlightOff = true
	}
}

// New builds an adapter with the given pipeline options.
func New(opts fussy.Options, options ...Option) *Adapter {
	a := &Adapter{
		opts:   opts,
		styles: highlight.DefaultStyles(),
	}
	for _, opt := range options {
		opt(a)
	}
	if a.ranker == nil {
		a.ranker = fussy.NewRanker(nil, opts)
	}
	return a
}

// AllCompletions runs the full pipeline: compile the pattern, bound the
// scoring workload, score, order the scored group best-first, decorate
// matches, and append the unscored passthrough group at the end. The
// original pool is never mutated and payloads travel unchanged.
func (a *Adapter) AllCompletions(input string, pool []fussy.Candidate, pred Predicate, ctx Context) []fussy.Annotated {
	filtered := pool
	if pred != nil {
		filtered = make([]fussy.Candidate, 0, len(pool))
		for _, c := range pool {
			if pred(c) {
				filtered = append(filtered, c)
			}
		}
	}

	pattern := fussy.CompilePattern(input, ctx.Source, ctx.Cursor)
	toScore, passthrough := fussy.Partition(filtered, a.opts.MaxCandidateLimit)
	ranked := a.ranker.Rank(toScore, pattern.Query)
	fussy.Sort(ranked)

	strategy := a.strategyFor(pattern)
	for i := range ranked {
		if !ranked[i].Scored {
			continue
		}
		ranked[i].Display, ranked[i].Spans = strategy.Highlight(
			ranked[i].Text, ranked[i].Indices, ranked[i].Forced)
	}

	for _, c := range passthrough {
		ranked = append(ranked, fussy.Annotated{Candidate: c, Display: c.Text})
	}
	return ranked
}

// SortHook returns the comparator the host should install as both its
// default order and cycle order. When no filter text is active it
// returns nil so the host keeps its own ordering instead of resorting on
// every keystroke.
func (a *Adapter) SortHook(ctx Context) func(x, y fussy.Annotated) int {
	if !ctx.FilterActive {
		return nil
	}
	return fussy.Compare
}

func (a *Adapter) strategyFor(pattern fussy.Pattern) highlight.Strategy {
	if a.highlightOff {
		return highlight.None{}
	}
	if pattern.IsFile() {
		return highlight.NewDelegated(a.styles)
	}
	return highlight.NewRuns(a.styles)
}
