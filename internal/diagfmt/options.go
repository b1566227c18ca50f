// Package diagfmt renders pipeline artifacts (tokens, trees, diagnostics)
// for people and for machines: pretty text, JSON, and msgpack.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	Max              int  // обрезка вывода (0 — без лимита)
}
