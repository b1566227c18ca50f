package diag

// Severity defines the importance of a diagnostic.
//
// The pipeline contract is total: nothing it reports is fatal, so the scale
// tops out at Warning.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for recovered anomalies (the usual case).
	SevWarning
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	}
	return "UNKNOWN"
}
