package ast

import (
	"wikitext/internal/source"
)

// Node is one syntax tree node. A single struct covers the closed variant
// set; which payload fields are meaningful depends on Kind. Children always
// appear in document order and partition the parent's span (gaps allowed for
// absorbed separators, overlaps never).
type Node struct {
	Kind NodeKind
	Span source.Span

	// Payload fields, by kind:
	Text    string // TextRun, RawRun literal content
	Level   int    // Heading level (1-6)
	Ordered bool   // List: numbered markers
	Header  bool   // TableCell: `||~` title cell
	Style   Style  // Format
	URL     string // Link destination (page name or full URL)
	Label   string // Link display text ("" means use URL)
	Target  string // IncludePlaceholder target

	Children []*Node
}

// NewText builds a literal text node.
func NewText(sp source.Span, text string) *Node {
	return &Node{Kind: TextRun, Span: sp, Text: text}
}

// Append adds children and grows the parent's span to cover them.
func (n *Node) Append(children ...*Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if len(n.Children) == 0 && n.Span.Empty() {
			n.Span = child.Span
		} else {
			n.Span = n.Span.Cover(child.Span)
		}
		n.Children = append(n.Children, child)
	}
}

// CoverDescendants recomputes spans bottom-up so that every node in the
// subtree covers all of its descendants. Append keeps only the direct
// parent's span current; after attaching to a node that is already a child
// (nested lists), the ancestor spans go stale and need this pass.
func (n *Node) CoverDescendants() {
	for _, child := range n.Children {
		child.CoverDescendants()
		n.Span = n.Span.Cover(child.Span)
	}
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Walk calls fn for n and every descendant in document order. Walking stops
// early if fn returns false for a node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
