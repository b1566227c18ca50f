package preproc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotFound is returned by an Includer when the target does not exist.
var ErrNotFound = errors.New("include target not found")

// maxIncludeDepth bounds runaway expansion through distinct pages.
// A direct or indirect self-include is caught earlier by the active chain.
const maxIncludeDepth = 16

// одно вхождение [[include target ...]]; всё после первой лексемы — аргументы
var includeRe = regexp.MustCompile(`(?is)\[\[\s*include\s+([^\]]+?)\s*\]\]`)

// PageRef names an include target, optionally qualified by a site
// (the `:site:page` form).
type PageRef struct {
	Site string
	Page string
}

// ParsePageRef splits an include target into its site and page parts.
func ParsePageRef(target string) PageRef {
	if rest, ok := strings.CutPrefix(target, ":"); ok {
		if site, page, found := strings.Cut(rest, ":"); found {
			return PageRef{Site: site, Page: page}
		}
	}
	return PageRef{Page: target}
}

func (r PageRef) String() string {
	if r.Site != "" {
		return fmt.Sprintf(":%s:%s", r.Site, r.Page)
	}
	return r.Page
}

// Includer is the caller-supplied capability that maps an include target to
// replacement text. It may be called repeatedly for the same target; cycle
// tracking is the engine's responsibility, not the includer's.
type Includer interface {
	Include(ref PageRef) (string, error)
}

// NullIncluder resolves nothing. Every include marker stays verbatim and
// later parses into an include-placeholder node.
type NullIncluder struct{}

func (NullIncluder) Include(PageRef) (string, error) {
	return "", ErrNotFound
}

// MapIncluder resolves includes from an in-memory map, keyed by the page
// reference string form. Intended for tests and small tools.
type MapIncluder map[string]string

func (m MapIncluder) Include(ref PageRef) (string, error) {
	text, ok := m[ref.String()]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

// ExpandIncludes replaces every [[include target]] marker with the text the
// includer resolves for it, recursively. Expansion never fails:
//
//   - a target the includer cannot resolve stays verbatim in the output,
//   - a cyclic include is detected via the active expansion chain, and only
//     the cycle-closing occurrence stays verbatim,
//   - malformed markers never match and are untouched.
//
// The returned slice lists every page that was successfully included, in
// document order, with repeats.
func ExpandIncludes(text string, inc Includer) (string, []PageRef) {
	if inc == nil {
		return text, nil
	}
	var pages []PageRef
	out := expandIncludes(text, inc, nil, &pages)
	return out, pages
}

func expandIncludes(text string, inc Includer, active []PageRef, pages *[]PageRef) string {
	if len(active) >= maxIncludeDepth {
		return text
	}

	matches := includeRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		target := text[m[2]:m[3]]

		// Аргументы после первой лексемы пока игнорируем
		if i := strings.IndexAny(target, " \t\n"); i >= 0 {
			target = target[:i]
		}
		ref := ParsePageRef(target)

		sb.WriteString(text[last:start])
		last = end

		if ref.Page == "" || inChain(active, ref) {
			// пустая цель или замыкание цикла — оставляем как есть
			sb.WriteString(text[start:end])
			continue
		}

		replacement, err := inc.Include(ref)
		if err != nil {
			sb.WriteString(text[start:end])
			continue
		}

		*pages = append(*pages, ref)
		sb.WriteString(expandIncludes(replacement, inc, append(active, ref), pages))
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func inChain(active []PageRef, ref PageRef) bool {
	for _, a := range active {
		if a == ref {
			return true
		}
	}
	return false
}
