package fussy

// Source classifies where a candidate pool came from. Filename-style
// pools get a different highlight strategy downstream; nothing here
// affects scoring.
type Source int

const (
	// SourceGeneric is any plain candidate pool.
	SourceGeneric Source = iota
	// SourceFile marks pools enumerated from filesystem paths.
	SourceFile
)

// Pattern is the compiled form of a query: the raw text plus the cursor
// context it was typed in. It only drives highlighting dispatch.
type Pattern struct {
	Query  string
	Cursor int
	Source Source
}

// CompilePattern derives a pattern from the raw query and its pool
// source. It never fails; an empty query compiles to a pattern that
// matches everything, which the ranking stage treats as a signal to skip
// scoring entirely.
func CompilePattern(query string, source Source, cursor int) Pattern {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(query) {
		cursor = len(query)
	}
	return Pattern{Query: query, Cursor: cursor, Source: source}
}

// Empty reports whether the pattern matches everything.
func (p Pattern) Empty() bool {
	return p.Query == ""
}

// IsFile reports whether the pool is filename-style.
func (p Pattern) IsFile() bool {
	return p.Source == SourceFile
}
