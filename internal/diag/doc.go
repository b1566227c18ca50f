// Package diag defines the diagnostic model shared by all pipeline stages.
//
// A Diagnostic is a non-fatal, span-tagged record of a recovered anomaly:
// an unmatched closing marker, a construct auto-closed at a block boundary,
// a malformed construct degraded to literal text. The pipeline never fails;
// diagnostics are its only channel for reporting what went wrong, so no
// severity in this package represents a hard error.
//
// Producers emit through a Reporter to stay decoupled from storage. BagReporter
// aggregates into a Bag, which supports sorting, deduplication, and merging.
// Rendering lives in internal/diagfmt; this package is data-only.
package diag
