package model

// Score bounds.
const (
	MaxScore = 100
	MinScore = 0
)

// CrackEstimate is a zxcvbn-style estimate of how hard a password is to guess.
// It is informational and never changes the score.
type CrackEstimate struct {
	// Score is the zxcvbn score from 0 (trivial) to 4 (very hard).
	Score int `json:"score"`

	// Entropy is the zxcvbn minimum-entropy estimate in bits.
	Entropy float64 `json:"entropy"`

	// CrackTime is the estimated time to crack in seconds.
	CrackTime float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is CrackTime rendered for humans, e.g. "3 hours".
	CrackTimeDisplay string `json:"crack_time_display"`
}

// Result is the outcome of analyzing a single password.
// It is created once by the analyzer and must be treated as read-only.
type Result struct {
	// Score is the final clamped score in [0, 100].
	Score int `json:"score"`

	// Rating is derived from Score with RatingForScore.
	Rating Rating `json:"rating"`

	// Feedback holds the ordered feedback lines:
	// length, variety, patterns, breach, entropy.
	Feedback []Feedback `json:"feedback"`

	// EntropyBits is the pool-size entropy estimate.
	EntropyBits float64 `json:"entropy_bits"`

	// BreachCount is how often the password appears in the breach corpus.
	// Zero means not found or the lookup was inconclusive.
	BreachCount int `json:"breach_count"`

	// Patterns holds the detected weak patterns, sequence first.
	Patterns []PatternFinding `json:"patterns,omitempty"`

	// Crack is the zxcvbn estimate.
	Crack CrackEstimate `json:"crack"`
}

// Breached reports whether the password was found in the breach corpus.
func (r Result) Breached() bool {
	return r.BreachCount > 0
}

// FeedbackBySeverity returns the feedback lines with the given severity,
// preserving their order.
func (r Result) FeedbackBySeverity(severity Severity) []Feedback {
	var lines []Feedback
	for _, f := range r.Feedback {
		if f.Severity == severity {
			lines = append(lines, f)
		}
	}
	return lines
}

// ClampScore limits a raw score to [MinScore, MaxScore].
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
