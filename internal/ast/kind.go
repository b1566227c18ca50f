package ast

// NodeKind identifies the variant of a syntax tree node. The set is closed;
// serialized output uses the stable kebab-case names from String.
type NodeKind uint8

const (
	// Document is the single root of every tree.
	Document NodeKind = iota
	// Paragraph is the default block collecting inline content.
	Paragraph
	// Heading is a `= ...` line; Level carries the depth (1-6).
	Heading
	// List groups consecutive list items of one depth; Ordered distinguishes
	// `#` from `*` markers.
	List
	// ListItem is one list entry; children are inline content or nested lists.
	ListItem
	// Table groups consecutive `||` rows.
	Table
	// TableRow is one table line.
	TableRow
	// TableCell is one cell; Header marks `||~` cells.
	TableCell
	// Format is an inline formatting span; Style names the delimiter pair.
	Format
	// Link is an internal or external link.
	Link
	// TextRun is a literal run of document text.
	TextRun
	// RawRun is `@@ ... @@` content, rendered exactly as written.
	RawRun
	// IncludePlaceholder marks an include marker that survived preprocessing.
	IncludePlaceholder
	// HorizontalRuleNode is a `----` separator.
	HorizontalRuleNode
	// LineBreakNode is an explicit line break inside a block.
	LineBreakNode
)

var nodeKindName = map[NodeKind]string{
	Document:           "document",
	Paragraph:          "paragraph",
	Heading:            "heading",
	List:               "list",
	ListItem:           "list-item",
	Table:              "table",
	TableRow:           "table-row",
	TableCell:          "table-cell",
	Format:             "format",
	Link:               "link",
	TextRun:            "text",
	RawRun:             "raw",
	IncludePlaceholder: "include-placeholder",
	HorizontalRuleNode: "horizontal-rule",
	LineBreakNode:      "line-break",
}

func (k NodeKind) String() string {
	name, ok := nodeKindName[k]
	if !ok {
		return "invalid"
	}
	return name
}

// Style names the formatting applied by a Format node.
type Style uint8

const (
	StyleBold Style = iota
	StyleItalics
	StyleUnderline
	StyleSuperscript
	StyleSubscript
	StyleStrike
	StyleMonospace
)

var styleName = map[Style]string{
	StyleBold:        "bold",
	StyleItalics:     "italics",
	StyleUnderline:   "underline",
	StyleSuperscript: "superscript",
	StyleSubscript:   "subscript",
	StyleStrike:      "strike",
	StyleMonospace:   "monospace",
}

func (s Style) String() string {
	name, ok := styleName[s]
	if !ok {
		return "invalid"
	}
	return name
}
