// Package preproc performs the text-level substitution passes that run before
// any structural interpretation:
//
//   - remove wiki comments
//   - replace DOS and legacy Mac newlines
//   - trim whitespace-only lines
//   - concatenate lines that end with backslashes
//   - convert tabs to four spaces
//   - compress groups of 3+ newlines into 2 newlines
//   - normalize to Unicode NFC
//
// Comments are stripped here rather than in the parser so that the typography
// pass cannot turn the dashes of `[!--` and `--]` into anything else.
//
// The package produces no diagnostics: malformed markers are left verbatim for
// the later stages to treat as ordinary text.
package preproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	commentRe        = regexp.MustCompile(`(?s)\[!--.*?--\]`)
	whitespaceLineRe = regexp.MustCompile(`(?m)^[ \t]+$`)
	newlinesRe       = regexp.MustCompile(`\n{3,}`)
)

// miscRules run in fixed order; each rule sees the output of the previous one.
var miscRules = []replacer{
	regexReplace{commentRe, ""},
	strReplace{"\r\n", "\n"},
	strReplace{"\r", "\n"},
	regexReplace{whitespaceLineRe, ""},
	strReplace{"\\\n", ""},
	strReplace{"\t", "    "},
	regexReplace{newlinesRe, "\n\n"},
}

// Substitute applies the miscellaneous substitution pass and returns the
// rewritten text. It is total: any input yields an output.
func Substitute(text string) string {
	for _, rule := range miscRules {
		text = rule.apply(text)
	}
	text = strings.Trim(text, "\n")
	return norm.NFC.String(text)
}
