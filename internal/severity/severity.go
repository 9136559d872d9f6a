// Package severity provides severity level constants for issues reported by
// the renderer.
//
// The levels are ordered from least to most severe: Info < Warning < Error.
package severity

// Severity indicates the severity level of an issue raised while rendering
// a collection.
type Severity int

const (
	// SeverityInfo indicates informational messages about rendering choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo Severity = iota

	// SeverityWarning indicates degraded output that should be reviewed,
	// such as disambiguated duplicate anchors.
	SeverityWarning

	// SeverityError indicates input that could not be rendered at all.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
