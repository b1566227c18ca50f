package preproc

import (
	"regexp"
)

// Typographical replacements, in the order the original wiki engine applies
// them:
//   - “ .. ” to fancy double quotes
//   - ,, .. ” to fancy lowered double quotes
//   - ` .. ' to fancy single quotes
//   - << and >> to French angle quotation marks
//   - ... to an ellipsis
var typographyRules = []replacer{
	regexSurround{regexp.MustCompile("``(.*?)''"), "“", "”"},
	regexSurround{regexp.MustCompile(",,(.*?)''"), "„", "”"},
	regexSurround{regexp.MustCompile("`(.*?)'"), "‘", "’"},
	strReplace{"<<", "«"},
	strReplace{">>", "»"},
	regexReplace{regexp.MustCompile(`(?:\.\.\.|\. \. \.)`), "…"},
}

// Typography applies the typographical substitution pass. It is optional and
// runs after Substitute when enabled.
func Typography(text string) string {
	for _, rule := range typographyRules {
		text = rule.apply(text)
	}
	return text
}
