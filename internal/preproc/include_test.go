package preproc_test

import (
	"strings"
	"testing"

	"wikitext/internal/preproc"
)

func TestExpandIncludes(t *testing.T) {
	inc := preproc.MapIncluder{
		"component": "INNER",
		"outer":     "before [[include component]] after",
	}

	out, pages := preproc.ExpandIncludes("x [[include component]] y", inc)
	if out != "x INNER y" {
		t.Fatalf("out = %q, want %q", out, "x INNER y")
	}
	if len(pages) != 1 || pages[0].Page != "component" {
		t.Fatalf("pages = %v", pages)
	}

	// Рекурсивное разворачивание
	out, pages = preproc.ExpandIncludes("[[include outer]]", inc)
	if out != "before INNER after" {
		t.Fatalf("out = %q, want %q", out, "before INNER after")
	}
	if len(pages) != 2 {
		t.Fatalf("pages = %v, want outer then component", pages)
	}
}

func TestExpandIncludesMissing(t *testing.T) {
	out, pages := preproc.ExpandIncludes("a [[include nope]] b", preproc.NullIncluder{})
	if out != "a [[include nope]] b" {
		t.Fatalf("missing include must stay verbatim, got %q", out)
	}
	if len(pages) != 0 {
		t.Fatalf("pages = %v, want none", pages)
	}
}

// countingIncluder падает в тесте, если один target запрашивается повторно
// внутри одной активной цепочки.
type countingIncluder struct {
	pages map[string]string
	calls map[string]int
}

func (c *countingIncluder) Include(ref preproc.PageRef) (string, error) {
	c.calls[ref.String()]++
	text, ok := c.pages[ref.String()]
	if !ok {
		return "", preproc.ErrNotFound
	}
	return text, nil
}

func TestExpandIncludesSelfCycle(t *testing.T) {
	inc := &countingIncluder{
		pages: map[string]string{"loop": "head [[include loop]] tail"},
		calls: map[string]int{},
	}

	out, pages := preproc.ExpandIncludes("[[include loop]]", inc)
	if out != "head [[include loop]] tail" {
		t.Fatalf("out = %q", out)
	}
	if inc.calls["loop"] != 1 {
		t.Fatalf("resolver called %d times for the cycling target, want 1", inc.calls["loop"])
	}
	if len(pages) != 1 {
		t.Fatalf("pages = %v", pages)
	}
}

func TestExpandIncludesMutualCycle(t *testing.T) {
	inc := preproc.MapIncluder{
		"a": "A( [[include b]] )",
		"b": "B( [[include a]] )",
	}
	out, _ := preproc.ExpandIncludes("[[include a]]", inc)
	if out != "A( B( [[include a]] ) )" {
		t.Fatalf("out = %q", out)
	}
}

func TestExpandIncludesSiblingsAreNotCycles(t *testing.T) {
	// Один и тот же target дважды на одном уровне — это не цикл
	inc := preproc.MapIncluder{"x": "X"}
	out, pages := preproc.ExpandIncludes("[[include x]] [[include x]]", inc)
	if out != "X X" {
		t.Fatalf("out = %q", out)
	}
	if len(pages) != 2 {
		t.Fatalf("pages = %v", pages)
	}
}

func TestExpandIncludesSiteQualified(t *testing.T) {
	inc := preproc.MapIncluder{":other:page": "REMOTE"}
	out, pages := preproc.ExpandIncludes("[[include :other:page]]", inc)
	if out != "REMOTE" {
		t.Fatalf("out = %q", out)
	}
	if len(pages) != 1 || pages[0] != (preproc.PageRef{Site: "other", Page: "page"}) {
		t.Fatalf("pages = %v", pages)
	}
}

func TestExpandIncludesIgnoresArguments(t *testing.T) {
	inc := preproc.MapIncluder{"page": "BODY"}
	out, _ := preproc.ExpandIncludes("[[include page arg=1\nother=2]]", inc)
	if out != "BODY" {
		t.Fatalf("out = %q", out)
	}
}

func TestExpandIncludesNilIncluder(t *testing.T) {
	out, pages := preproc.ExpandIncludes("[[include page]]", nil)
	if out != "[[include page]]" || pages != nil {
		t.Fatalf("nil includer must be a no-op, got %q %v", out, pages)
	}
}

func TestExpandIncludesDepthBound(t *testing.T) {
	// Цепочка страниц глубже лимита: разворачивание останавливается, не падает
	inc := preproc.MapIncluder{}
	for i := 0; i < 40; i++ {
		name := pageName(i)
		inc[name] = "[[include " + pageName(i+1) + "]]"
	}
	out, _ := preproc.ExpandIncludes("[[include "+pageName(0)+"]]", inc)
	if !strings.Contains(out, "[[include ") {
		t.Fatalf("deep chain should leave a verbatim marker, got %q", out)
	}
}

func pageName(i int) string {
	return "p" + strings.Repeat("x", i%3) + string(rune('a'+i%26))
}
