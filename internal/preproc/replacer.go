package preproc

import (
	"regexp"
	"strings"
)

// replacer is one text-level rewrite rule. Rules are pure: they take the
// whole document and return the rewritten document, nothing else.
type replacer interface {
	apply(text string) string
}

// strReplace replaces every occurrence of a literal pattern.
type strReplace struct {
	pattern     string
	replacement string
}

func (r strReplace) apply(text string) string {
	return strings.ReplaceAll(text, r.pattern, r.replacement)
}

// regexReplace replaces every match of a regular expression.
type regexReplace struct {
	re          *regexp.Regexp
	replacement string
}

func (r regexReplace) apply(text string) string {
	return r.re.ReplaceAllString(text, r.replacement)
}

// regexSurround wraps the first capture group of every match in begin/end,
// dropping the markers that delimited it.
type regexSurround struct {
	re         *regexp.Regexp
	begin, end string
}

func (r regexSurround) apply(text string) string {
	return r.re.ReplaceAllString(text, r.begin+"${1}"+r.end)
}
