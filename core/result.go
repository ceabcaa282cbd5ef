package core

// Result classifies the outcome of a single check cycle. Each orchestrator
// instance holds exactly one current Result, overwritten at the start and end
// of every cycle.
type Result int

const (
	// ResultUnknown is the pre-check default. A finished cycle leaves it only
	// when the unstable gate suppressed an otherwise available update.
	ResultUnknown Result = iota
	// ResultAvailable means a new update was found at a remote source. Never
	// use this as a default: returning it without a real update would notify
	// the audience of a non-existent release.
	ResultAvailable
	// ResultLatest means the locally installed version matches the newest
	// remote version.
	ResultLatest
	// ResultDisabled means the updater was switched off; no provider was
	// contacted.
	ResultDisabled
	// ResultFailConnection means a remote source could not be reached at the
	// DNS or socket level.
	ResultFailConnection
	// ResultFailVersion means a version string (remote or local) carried no
	// extractable numeric version.
	ResultFailVersion
)

// String returns the canonical name of the result.
func (r Result) String() string {
	switch r {
	case ResultAvailable:
		return "AVAILABLE"
	case ResultLatest:
		return "LATEST"
	case ResultDisabled:
		return "DISABLED"
	case ResultFailConnection:
		return "FAIL_CONNECTION"
	case ResultFailVersion:
		return "FAIL_VERSION"
	case ResultUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}
