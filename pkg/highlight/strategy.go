package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to emphasis spans.
type Styles struct {
	Match lipgloss.Style
	Tail  lipgloss.Style
}

// DefaultStyles returns the builtin emphasis styling.
func DefaultStyles() Styles {
	return Styles{
		Match: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		Tail: lipgloss.NewStyle().Underline(true),
	}
}

// Strategy turns matched indices into a decorated candidate string plus
// the spans the decoration was derived from. forced means the ranking
// fast path skipped scoring and the whole candidate counts as matched.
type Strategy interface {
	Highlight(text string, indices []int, forced bool) (string, []Span)
}

// Runs is the contiguous-run strategy: maximal matched runs plus the
// first-divergence tail, rendered in place.
type Runs struct {
	styles Styles
}

// NewRuns creates the contiguous-run strategy.
func NewRuns(styles Styles) *Runs {
	return &Runs{styles: styles}
}

func (r *Runs) Highlight(text string, indices []int, forced bool) (string, []Span) {
	var spans []Span
	if forced {
		spans = Full(len(text))
	} else {
		spans = FromIndices(indices, len(text))
	}
	return render(text, spans, r.styles), spans
}

// Delegated is the filename-pool strategy. Contiguous-run emphasis
// visually fights with path segment conventions, so only matches inside
// the final path segment are emphasized, one character at a time.
type Delegated struct {
	styles Styles
}

// NewDelegated creates the filename-aware strategy.
func NewDelegated(styles Styles) *Delegated {
	return &Delegated{styles: styles}
}

func (d *Delegated) Highlight(text string, indices []int, forced bool) (string, []Span) {
	base := strings.LastIndexByte(text, '/') + 1
	if forced {
		spans := []Span{{Start: base, End: len(text), Kind: Run}}
		if base == len(text) {
			spans = Full(len(text))
		}
		return render(text, spans, d.styles), spans
	}
	var spans []Span
	for _, idx := range indices {
		if idx >= base && idx < len(text) {
			spans = append(spans, Span{Start: idx, End: idx + 1, Kind: Run})
		}
	}
	return render(text, spans, d.styles), spans
}

// None disables highlighting: candidates pass through untouched.
type None struct{}

func (None) Highlight(text string, indices []int, forced bool) (string, []Span) {
	return text, nil
}

// render wraps each span with its style, leaving the rest of the text as is.
// Spans are expected sorted and non-overlapping; out-of-bounds ranges are
// clipped rather than trusted.
func render(text string, spans []Span, styles Styles) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.Start < last {
			continue
		}
		if sp.End > len(text) {
			sp.End = len(text)
		}
		if sp.Start >= sp.End {
			continue
		}
		b.WriteString(text[last:sp.Start])
		style := styles.Match
		if sp.Kind == Tail {
			style = styles.Tail
		}
		b.WriteString(style.Render(text[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}
