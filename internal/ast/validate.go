package ast

import (
	"fmt"
)

// Validate checks the structural invariants of a finished tree:
//
//   - the root is a document node,
//   - every child's span lies within its parent's span,
//   - sibling spans are non-overlapping and monotonically increasing.
//
// A violation is a bug in the tree builder, never a property of the input,
// so Validate is used by tests and debug surfaces rather than the pipeline.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("tree has no root")
	}
	if root.Kind != Document {
		return fmt.Errorf("root is %s, want document", root.Kind)
	}
	return validateNode(root)
}

func validateNode(n *Node) error {
	prevEnd := n.Span.Start
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%s %s: child %d is nil", n.Kind, n.Span, i)
		}
		if !n.Span.Contains(child.Span) {
			return fmt.Errorf("%s %s: child %s %s escapes parent span",
				n.Kind, n.Span, child.Kind, child.Span)
		}
		if child.Span.Start < prevEnd {
			return fmt.Errorf("%s %s: child %s %s overlaps previous sibling",
				n.Kind, n.Span, child.Kind, child.Span)
		}
		prevEnd = child.Span.End

		if err := validateNode(child); err != nil {
			return err
		}
	}
	return nil
}
