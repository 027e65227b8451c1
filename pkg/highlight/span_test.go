package highlight

import "testing"

func TestFromIndicesRunsAndTail(t *testing.T) {
	spans := FromIndices([]int{2, 3, 4, 9}, 12)

	want := []Span{
		{Start: 2, End: 5, Kind: Run},
		{Start: 9, End: 10, Kind: Run},
		{Start: 10, End: 12, Kind: Tail},
	}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d: %v", len(spans), len(want), spans)
	}
	for i, sp := range spans {
		if sp != want[i] {
			t.Errorf("span %d: got %+v, want %+v", i, sp, want[i])
		}
	}
}

func TestFromIndicesTailClipped(t *testing.T) {
	// Only one character remains after the last match.
	spans := FromIndices([]int{2, 3, 4, 9}, 11)

	last := spans[len(spans)-1]
	if last.Kind != Tail || last.Start != 10 || last.End != 11 {
		t.Errorf("expected tail [10,11), got %+v", last)
	}
}

func TestFromIndicesNoTailAtEnd(t *testing.T) {
	// Match runs to the final character, nothing left to mark.
	spans := FromIndices([]int{3, 4}, 5)

	if len(spans) != 1 {
		t.Fatalf("expected single run span, got %v", spans)
	}
	if spans[0] != (Span{Start: 3, End: 5, Kind: Run}) {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestFromIndicesSingleRun(t *testing.T) {
	spans := FromIndices([]int{0, 1, 2}, 10)

	if spans[0] != (Span{Start: 0, End: 3, Kind: Run}) {
		t.Errorf("unexpected run: %+v", spans[0])
	}
	if spans[1] != (Span{Start: 3, End: 5, Kind: Tail}) {
		t.Errorf("unexpected tail: %+v", spans[1])
	}
}

func TestFromIndicesEmpty(t *testing.T) {
	if spans := FromIndices(nil, 10); spans != nil {
		t.Errorf("expected nil spans for no indices, got %v", spans)
	}
	if spans := FromIndices([]int{1}, 0); spans != nil {
		t.Errorf("expected nil spans for empty text, got %v", spans)
	}
}

func TestFull(t *testing.T) {
	spans := Full(7)
	if len(spans) != 1 || spans[0] != (Span{Start: 0, End: 7, Kind: Run}) {
		t.Errorf("unexpected full span: %v", spans)
	}
	if Full(0) != nil {
		t.Error("expected nil for empty text")
	}
}

func TestRunsStrategyForced(t *testing.T) {
	runs := NewRuns(DefaultStyles())

	_, spans := runs.Highlight("candidate", nil, true)

	if len(spans) != 1 || spans[0].Start != 0 || spans[0].End != len("candidate") {
		t.Errorf("forced highlight should cover the whole candidate: %v", spans)
	}
}

func TestRunsStrategyFromIndices(t *testing.T) {
	runs := NewRuns(DefaultStyles())

	_, spans := runs.Highlight("abcdefghij", []int{0, 1, 5}, false)

	if len(spans) != 3 {
		t.Fatalf("expected 2 runs + tail, got %v", spans)
	}
	if spans[0].Kind != Run || spans[1].Kind != Run || spans[2].Kind != Tail {
		t.Errorf("unexpected span kinds: %v", spans)
	}
}

func TestDelegatedStrategyBasenameOnly(t *testing.T) {
	delegated := NewDelegated(DefaultStyles())

	// Matches at 0 and 1 sit in the directory part and are skipped;
	// only the basename match at 8 is emphasized.
	_, spans := delegated.Highlight("src/dir/file.go", []int{0, 1, 8}, false)

	if len(spans) != 1 {
		t.Fatalf("expected single basename span, got %v", spans)
	}
	if spans[0].Start != 8 || spans[0].End != 9 {
		t.Errorf("unexpected span: %+v", spans[0])
	}
}

func TestNoneStrategyPassthrough(t *testing.T) {
	var none None

	text, spans := none.Highlight("anything", []int{1, 2}, false)

	if text != "anything" || spans != nil {
		t.Errorf("disabled highlighting should pass through untouched: %q %v", text, spans)
	}
}

func TestRenderClipsOutOfBounds(t *testing.T) {
	out := render("abc", []Span{{Start: 1, End: 99, Kind: Run}}, DefaultStyles())

	// Without a terminal the styles render as plain text; the content
	// must survive intact either way.
	if out == "" {
		t.Fatal("render produced empty output")
	}
}
