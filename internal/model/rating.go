package model

import "fmt"

// Rating is the qualitative strength of a password.
type Rating int

const (
	// RatingWeak is assigned to scores below 40.
	RatingWeak Rating = iota

	// RatingMedium is assigned to scores from 40 to 69.
	RatingMedium

	// RatingStrong is assigned to scores from 70 to 89.
	RatingStrong

	// RatingVeryStrong is assigned to scores of 90 and above.
	RatingVeryStrong
)

// Rating thresholds applied to the final clamped score.
const (
	VeryStrongThreshold = 90
	StrongThreshold     = 70
	MediumThreshold     = 40
)

// RatingForScore returns the rating for a final score.
func RatingForScore(score int) Rating {
	switch {
	case score >= VeryStrongThreshold:
		return RatingVeryStrong
	case score >= StrongThreshold:
		return RatingStrong
	case score >= MediumThreshold:
		return RatingMedium
	default:
		return RatingWeak
	}
}

// String returns the display name of the rating.
func (r Rating) String() string {
	switch r {
	case RatingVeryStrong:
		return "Very Strong"
	case RatingStrong:
		return "Strong"
	case RatingMedium:
		return "Medium"
	case RatingWeak:
		return "Weak"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the rating as a snake_case identifier.
func (r Rating) MarshalText() ([]byte, error) {
	switch r {
	case RatingVeryStrong:
		return []byte("very_strong"), nil
	case RatingStrong:
		return []byte("strong"), nil
	case RatingMedium:
		return []byte("medium"), nil
	case RatingWeak:
		return []byte("weak"), nil
	default:
		return nil, fmt.Errorf("unknown rating %d", int(r))
	}
}
