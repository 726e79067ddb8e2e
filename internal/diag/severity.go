// Package diag is the shared diagnostic bag every compiler phase writes
// into. It owns severity, code, and label rendering so that callers never
// format error strings themselves (spec §7).
package diag

// Severity ranks a diagnostic's importance. Larger values are more severe;
// Bag.SortByLocation relies on this ordering to break ties within a single location.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}
