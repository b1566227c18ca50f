package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// TextFlags encodes metadata about how a Text was loaded.
type TextFlags uint8

const (
	// TextVirtual indicates the text was added from memory (test, stdin, …).
	TextVirtual TextFlags = 1 << iota
	TextHadBOM
	TextNormalizedCRLF
)

// Text holds one preprocessed wikitext document. All token and node spans
// index into Content.
type Text struct {
	Name    string
	Content []byte
	LineIdx []uint32
	Flags   TextFlags
}

// LineCol represents a human-readable position in a document.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// New builds a Text from in-memory content.
func New(name, content string) *Text {
	return newText(name, []byte(content), TextVirtual)
}

// Load reads a document from disk, stripping a UTF-8 BOM if present.
// CRLF is left alone here: line-ending normalization belongs to the
// preprocessor, and spans must index the preprocessed bytes.
func Load(path string) (*Text, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	flags := TextFlags(0)
	if hadBOM {
		flags |= TextHadBOM
	}
	return newText(normalizePath(path), content, flags), nil
}

func newText(name string, content []byte, flags TextFlags) *Text {
	return &Text{
		Name:    name,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}
}

// Len returns the content length as a span offset.
func (t *Text) Len() uint32 {
	n, err := safecast.Conv[uint32](len(t.Content))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	return n
}

// String returns the whole content as a string.
func (t *Text) String() string {
	return string(t.Content)
}

// Slice returns the content covered by the span.
func (t *Text) Slice(sp Span) string {
	return string(t.Content[sp.Start:sp.End])
}

// Resolve converts a span into line and column positions.
func (t *Text) Resolve(sp Span) (start, end LineCol) {
	return toLineCol(t.LineIdx, sp.Start), toLineCol(t.LineIdx, sp.End)
}

// Line returns the 1-based line containing the offset, without its newline.
func (t *Text) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	lenIdx := uint32(len(t.LineIdx))
	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenIdx:
		start = t.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if lineNum-1 < lenIdx {
		end = t.LineIdx[lineNum-1]
	} else {
		end = t.Len()
	}
	if start > end {
		return ""
	}
	return string(t.Content[start:end])
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
