package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"wikitext/internal/ast"
	"wikitext/internal/source"
)

// NodeJSON — сериализуемая форма узла дерева: компактный tagged union,
// пустые поля выпадают. Одна и та же структура едет и в JSON, и в msgpack.
type NodeJSON struct {
	Kind     string      `json:"kind" msgpack:"kind"`
	Span     source.Span `json:"span" msgpack:"span"`
	Text     string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Level    int         `json:"level,omitempty" msgpack:"level,omitempty"`
	Ordered  bool        `json:"ordered,omitempty" msgpack:"ordered,omitempty"`
	Header   bool        `json:"header,omitempty" msgpack:"header,omitempty"`
	Style    string      `json:"style,omitempty" msgpack:"style,omitempty"`
	URL      string      `json:"url,omitempty" msgpack:"url,omitempty"`
	Label    string      `json:"label,omitempty" msgpack:"label,omitempty"`
	Target   string      `json:"target,omitempty" msgpack:"target,omitempty"`
	Children []NodeJSON  `json:"children,omitempty" msgpack:"children,omitempty"`
}

// TreeToJSON рекурсивно конвертирует дерево в сериализуемую форму.
func TreeToJSON(n *ast.Node) NodeJSON {
	out := NodeJSON{
		Kind:    n.Kind.String(),
		Span:    n.Span,
		Text:    n.Text,
		Level:   n.Level,
		Ordered: n.Ordered,
		Header:  n.Header,
		URL:     n.URL,
		Label:   n.Label,
		Target:  n.Target,
	}
	if n.Kind == ast.Format {
		out.Style = n.Style.String()
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, TreeToJSON(child))
	}
	return out
}

// FormatTreeJSON выводит дерево в JSON формате
func FormatTreeJSON(w io.Writer, tree *ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TreeToJSON(tree))
}

// FormatTreePretty печатает дерево с отступами, по узлу на строку:
//
//	document 0-13
//	  paragraph 0-13
//	    format(bold) 0-8
//	      text 2-6 "bold"
func FormatTreePretty(w io.Writer, tree *ast.Node) {
	writeTreeNode(w, tree, 0)
}

func writeTreeNode(w io.Writer, n *ast.Node, depth int) {
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), n.Kind.String())
	switch n.Kind {
	case ast.Format:
		fmt.Fprintf(w, "(%s)", n.Style)
	case ast.Heading:
		fmt.Fprintf(w, "(%d)", n.Level)
	case ast.List:
		if n.Ordered {
			fmt.Fprint(w, "(ordered)")
		}
	case ast.TableCell:
		if n.Header {
			fmt.Fprint(w, "(header)")
		}
	}
	fmt.Fprintf(w, " %s", n.Span)
	if n.Text != "" {
		fmt.Fprintf(w, " %q", n.Text)
	}
	if n.URL != "" {
		fmt.Fprintf(w, " url=%q", n.URL)
	}
	if n.Target != "" {
		fmt.Fprintf(w, " target=%q", n.Target)
	}
	if n.Label != "" {
		fmt.Fprintf(w, " label=%q", n.Label)
	}
	fmt.Fprintln(w)
	for _, child := range n.Children {
		writeTreeNode(w, child, depth+1)
	}
}
