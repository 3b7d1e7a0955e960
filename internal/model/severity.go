package model

import "fmt"

// Severity represents the weight of a feedback line.
// The text writer maps each level to a terminal color.
type Severity int

const (
	// SeverityInfo marks purely informational lines such as the entropy estimate.
	SeverityInfo Severity = iota

	// SeveritySuccess marks a check the password passed.
	SeveritySuccess

	// SeverityWarning marks an acceptable result that could be improved.
	SeverityWarning

	// SeverityCritical marks a check the password failed.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeveritySuccess:
		return "SUCCESS"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the severity as its lower-case name for JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityInfo:
		return []byte("info"), nil
	case SeveritySuccess:
		return []byte("success"), nil
	case SeverityWarning:
		return []byte("warning"), nil
	case SeverityCritical:
		return []byte("critical"), nil
	default:
		return nil, fmt.Errorf("unknown severity %d", int(s))
	}
}

// Feedback is one ordered line of analysis output.
type Feedback struct {
	// Severity is the weight of the line.
	Severity Severity `json:"severity"`

	// Message is the human-readable text. It never contains the password.
	Message string `json:"message"`
}
