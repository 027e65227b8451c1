package complete

import (
	"strings"
	"unicode"

	"github.com/jimeh/fussy/pkg/fussy"
)

// TryCompletion expands input to the longest common prefix among the
// candidates that start with it, honoring the predicate. This is the
// standard flexible-prefix expansion; fuzzy ranking plays no part here.
// The second return is false when nothing matches. When the expansion
// equals the input and exactly one candidate remains, the completion is
// already exact.
func (a *Adapter) TryCompletion(input string, pool []fussy.Candidate, pred Predicate, ctx Context) (string, bool) {
	var matches []string
	for _, c := range pool {
		if pred != nil && !pred(c) {
			continue
		}
		if hasPrefix(c.Text, input, a.opts.IgnoreCase) {
			matches = append(matches, c.Text)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	expansion := matches[0]
	for _, m := range matches[1:] {
		expansion = commonPrefix(expansion, m, a.opts.IgnoreCase)
	}
	// Never contract below what was typed.
	if len(expansion) < len(input) {
		expansion = input
	}
	return expansion, true
}

func hasPrefix(s, prefix string, fold bool) bool {
	if fold {
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
	}
	return strings.HasPrefix(s, prefix)
}

// commonPrefix returns the longest shared prefix of a and b, spelled as
// in a when folding case. Folding compares rune by rune; lowercasing can
// change byte lengths, so byte offsets into a folded copy must never be
// applied back to the original.
func commonPrefix(a, b string, fold bool) string {
	if !fold {
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		i := 0
		for i < n && a[i] == b[i] {
			i++
		}
		return a[:i]
	}
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	i := 0
	for i < n && unicode.ToLower(ra[i]) == unicode.ToLower(rb[i]) {
		i++
	}
	return string(ra[:i])
}
