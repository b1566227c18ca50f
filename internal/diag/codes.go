package diag

import (
	"fmt"
)

// Code is a compact identifier for a diagnostic kind. The string form (Name)
// is stable and enumerable; serialized output uses it, never the number.
type Code uint16

const (
	// UnknownCode — на первое время
	UnknownCode Code = 0

	// Включения (зарезервируем: сейчас препроцессор молчит по контракту)
	IncludeInfo Code = 1000

	// Структурные, от парсера
	ParseInfo Code = 2000
	// UnmatchedClosingMarker: closing delimiter with no compatible open
	// construct; reinterpreted as literal text.
	UnmatchedClosingMarker Code = 2001
	// UnclosedAutoClosed: an explicitly-opened construct reached its block
	// boundary or end of input without its closing marker.
	UnclosedAutoClosed Code = 2002
	// MalformedConstruct: a bounded construct (link, include) never found its
	// closer and degraded to literal text.
	MalformedConstruct Code = 2003
	// DeprecatedConstruct: syntax that still parses but should not be written.
	DeprecatedConstruct Code = 2004
)

var codeName = map[Code]string{
	UnknownCode:            "unknown",
	IncludeInfo:            "include-info",
	ParseInfo:              "parse-info",
	UnmatchedClosingMarker: "unmatched-closing-marker",
	UnclosedAutoClosed:     "unclosed-auto-closed",
	MalformedConstruct:     "malformed-construct",
	DeprecatedConstruct:    "deprecated-construct",
}

// Name returns the stable kebab-case identifier for the code.
func (c Code) Name() string {
	name, ok := codeName[c]
	if !ok {
		return codeName[UnknownCode]
	}
	return name
}

// ID returns the short numeric identifier grouped by pipeline stage.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("INC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "W0000"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Name())
}
