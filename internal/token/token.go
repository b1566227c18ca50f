package token

import (
	"wikitext/internal/source"
)

// Token is a single extracted token: a kind, the span it covers, and the raw
// slice of the preprocessed text it was cut from. Tokens are immutable once
// emitted; the parser borrows them and never mutates.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsFormatting reports whether the token is an ambiguous formatting toggle
// whose open/close role is resolved by the parser.
func (t Token) IsFormatting() bool {
	switch t.Kind {
	case Bold, Italics, Underline, Superscript, Subscript, Strike:
		return true
	default:
		return false
	}
}

// IsBlockStart reports whether the token can only begin a block construct.
func (t Token) IsBlockStart() bool {
	switch t.Kind {
	case Heading, BulletItem, NumberedItem, HorizontalRule, TableColumn, TableColumnTitle:
		return true
	default:
		return false
	}
}

// IsBreak reports whether the token terminates or separates lines.
func (t Token) IsBreak() bool {
	switch t.Kind {
	case LineBreak, ParagraphBreak, EOF:
		return true
	default:
		return false
	}
}
