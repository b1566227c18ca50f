package token

// Kind represents the lexical category of a wikitext token.
type Kind uint8

const (
	// EOF marks the end of the input. Always emitted last, with an empty span.
	EOF Kind = iota

	// Text is a run of characters matching no structural rule.
	Text
	// Whitespace is a run of spaces inside a line.
	Whitespace
	// LineBreak is a single newline.
	LineBreak
	// ParagraphBreak is a run of two or more newlines.
	ParagraphBreak

	// Bold is the ambiguous '**' formatting toggle.
	Bold // **
	// Italics is the ambiguous '//' formatting toggle.
	Italics // //
	// Underline is the ambiguous '__' formatting toggle.
	Underline // __
	// Superscript is the ambiguous '^^' formatting toggle.
	Superscript // ^^
	// Subscript is the ambiguous ',,' formatting toggle.
	Subscript // ,,
	// Strike is the ambiguous '--' formatting toggle.
	Strike // --
	// LeftMonospace opens a monospace span.
	LeftMonospace // {{
	// RightMonospace closes a monospace span.
	RightMonospace // }}
	// Raw delimits a span whose contents are never interpreted.
	Raw // @@

	// Heading is a run of '=' followed by a space at line start.
	Heading
	// BulletItem is a run of '*' followed by a space at line start.
	BulletItem
	// NumberedItem is a run of '#' followed by a space at line start.
	NumberedItem
	// HorizontalRule is four or more '-' alone on a line.
	HorizontalRule // ----
	// TableColumn separates table cells and starts table rows.
	TableColumn // ||
	// TableColumnTitle starts a header table cell.
	TableColumnTitle // ||~

	// LeftLink opens an internal page link.
	LeftLink // [[[
	// RightLink closes an internal page link.
	RightLink // ]]]
	// LeftBlock opens a block construct such as an include.
	LeftBlock // [[
	// RightBlock closes a block construct.
	RightBlock // ]]
	// LeftBracket opens a single-bracket URL link.
	LeftBracket // [
	// RightBracket closes a single-bracket URL link.
	RightBracket // ]
	// Pipe separates a link target from its label.
	Pipe // |

	// URL is a bare http/https/ftp URL.
	URL
)

var kindName = map[Kind]string{
	EOF:              "eof",
	Text:             "text",
	Whitespace:       "whitespace",
	LineBreak:        "line-break",
	ParagraphBreak:   "paragraph-break",
	Bold:             "bold",
	Italics:          "italics",
	Underline:        "underline",
	Superscript:      "superscript",
	Subscript:        "subscript",
	Strike:           "strike",
	LeftMonospace:    "left-monospace",
	RightMonospace:   "right-monospace",
	Raw:              "raw",
	Heading:          "heading",
	BulletItem:       "bullet-item",
	NumberedItem:     "numbered-item",
	HorizontalRule:   "horizontal-rule",
	TableColumn:      "table-column",
	TableColumnTitle: "table-column-title",
	LeftLink:         "left-link",
	RightLink:        "right-link",
	LeftBlock:        "left-block",
	RightBlock:       "right-block",
	LeftBracket:      "left-bracket",
	RightBracket:     "right-bracket",
	Pipe:             "pipe",
	URL:              "url",
}

// String returns the stable kebab-case name of the kind. Serialized output
// uses these names, so they must never change for an existing kind.
func (k Kind) String() string {
	name, ok := kindName[k]
	if !ok {
		return "invalid"
	}
	return name
}
