// Package highlight converts matched character indices into visual
// emphasis spans and renders them with lipgloss styles.
package highlight

// Kind tells the renderer which emphasis a span carries.
type Kind int

const (
	// Run marks a maximal contiguous block of matched characters.
	Run Kind = iota
	// Tail marks the one or two characters right after the final match,
	// a visual cue separating the match from unmatched trailing text.
	Tail
)

// Span is a half-open character range [Start, End) within a candidate.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// FromIndices derives emphasis spans from strictly increasing matched
// indices. Consecutive indices merge into one Run span; a gap closes the
// current run and opens the next. After the last match, up to two
// following characters become a Tail span, clipped to the text length.
func FromIndices(indices []int, textLen int) []Span {
	if len(indices) == 0 || textLen == 0 {
		return nil
	}
	var spans []Span
	start := indices[0]
	prev := indices[0]
	for _, idx := range indices[1:] {
		if idx != prev+1 {
			spans = append(spans, Span{Start: start, End: prev + 1, Kind: Run})
			start = idx
		}
		prev = idx
	}
	spans = append(spans, Span{Start: start, End: prev + 1, Kind: Run})

	if tail := prev + 1; tail < textLen {
		end := tail + 2
		if end > textLen {
			end = textLen
		}
		spans = append(spans, Span{Start: tail, End: end, Kind: Tail})
	}
	return spans
}

// Full marks the entire candidate as one matched run. Used when the
// ranking fast paths skip scoring and every candidate counts as matched.
func Full(textLen int) []Span {
	if textLen == 0 {
		return nil
	}
	return []Span{{Start: 0, End: textLen, Kind: Run}}
}
