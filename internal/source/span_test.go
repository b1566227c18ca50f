package source_test

import (
	"testing"

	"wikitext/internal/source"
)

func TestSpanBasics(t *testing.T) {
	sp := source.Span{Start: 3, End: 8}
	if sp.Empty() {
		t.Fatalf("span %v reported empty", sp)
	}
	if got := sp.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
	if got := sp.String(); got != "3-8" {
		t.Fatalf("String() = %q, want %q", got, "3-8")
	}

	empty := source.Span{Start: 4, End: 4}
	if !empty.Empty() {
		t.Fatalf("span %v not reported empty", empty)
	}
}

func TestTextString(t *testing.T) {
	txt := source.New("test.wiki", "abc\ndef")
	if got := txt.String(); got != "abc\ndef" {
		t.Fatalf("String() = %q, want %q", got, "abc\ndef")
	}
	if got := txt.Slice(source.Span{Start: 4, End: 7}); got != "def" {
		t.Fatalf("Slice() = %q, want %q", got, "def")
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		a, b, want source.Span
	}{
		{source.Span{Start: 3, End: 8}, source.Span{Start: 1, End: 4}, source.Span{Start: 1, End: 8}},
		{source.Span{Start: 3, End: 8}, source.Span{Start: 5, End: 12}, source.Span{Start: 3, End: 12}},
		{source.Span{Start: 3, End: 8}, source.Span{Start: 4, End: 6}, source.Span{Start: 3, End: 8}},
	}
	for _, tc := range tests {
		if got := tc.a.Cover(tc.b); got != tc.want {
			t.Errorf("%v.Cover(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSpanContains(t *testing.T) {
	outer := source.Span{Start: 2, End: 10}
	if !outer.Contains(source.Span{Start: 2, End: 10}) {
		t.Error("span should contain itself")
	}
	if !outer.Contains(source.Span{Start: 4, End: 7}) {
		t.Error("span should contain interior range")
	}
	if outer.Contains(source.Span{Start: 0, End: 5}) {
		t.Error("span should not contain range starting before it")
	}
	if outer.Contains(source.Span{Start: 5, End: 11}) {
		t.Error("span should not contain range ending after it")
	}
}

func TestResolve(t *testing.T) {
	txt := source.New("test.wiki", "abc\ndef\n\nghi")

	tests := []struct {
		off  uint32
		want source.LineCol
	}{
		{0, source.LineCol{Line: 1, Col: 1}},
		{2, source.LineCol{Line: 1, Col: 3}},
		{3, source.LineCol{Line: 1, Col: 4}}, // the newline ends line 1
		{4, source.LineCol{Line: 2, Col: 1}},
		{9, source.LineCol{Line: 4, Col: 1}},
		{11, source.LineCol{Line: 4, Col: 3}},
	}
	for _, tc := range tests {
		got, _ := txt.Resolve(source.Span{Start: tc.off, End: tc.off})
		if got != tc.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestLine(t *testing.T) {
	txt := source.New("test.wiki", "first\nsecond\n\nfourth")

	tests := []struct {
		num  uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
		{0, ""},
	}
	for _, tc := range tests {
		if got := txt.Line(tc.num); got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.num, got, tc.want)
		}
	}
}
