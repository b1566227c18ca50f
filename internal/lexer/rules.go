package lexer

import (
	"wikitext/internal/token"
)

// rule is one row of the literal marker table. The scanner walks the table in
// order and takes the first (and therefore longest) matching literal, so the
// table must stay sorted longest-first. Adding a marker means adding a row.
type rule struct {
	lit  string
	kind token.Kind
}

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var literalRules = []rule{
	{"[[[", token.LeftLink},
	{"]]]", token.RightLink},
	{"||~", token.TableColumnTitle},

	{"[[", token.LeftBlock},
	{"]]", token.RightBlock},
	{"||", token.TableColumn},
	{"**", token.Bold},
	{"//", token.Italics},
	{"__", token.Underline},
	{"^^", token.Superscript},
	{",,", token.Subscript},
	{"--", token.Strike},
	{"{{", token.LeftMonospace},
	{"}}", token.RightMonospace},
	{"@@", token.Raw},

	{"[", token.LeftBracket},
	{"]", token.RightBracket},
	{"|", token.Pipe},
}

// urlSchemes are the recognized bare-URL prefixes, checked at word starts only.
var urlSchemes = []string{"https://", "http://", "ftp://"}

// markerStart marks bytes that can begin a structural token. The raw-text
// absorber stops in front of them so the dispatcher gets another look.
var markerStart = [256]bool{
	'\n': true,
	' ':  true,
	'\t': true,
	'*':  true,
	'/':  true,
	'_':  true,
	'^':  true,
	',':  true,
	'-':  true,
	'{':  true,
	'}':  true,
	'@':  true,
	'[':  true,
	']':  true,
	'|':  true,
	'=':  true,
	'#':  true,
}
