// Package pattern detects trivially guessable runs inside a password.
//
// Two fixed-width rules are applied to every window of three consecutive
// runes: strictly ascending code points ("abc", "123") and identical
// characters ("aaa"). Only the first match of each rule is reported.
// Descending runs are not detected. Invalid UTF-8 bytes each decode to
// U+FFFD, so three of them in a row count as a repetition.
package pattern

import "github.com/nao1215/pwstrength/internal/model"

// windowSize is the width of the sliding window used by both rules.
const windowSize = 3

// Find returns the weak patterns in the password. A sequence finding, if
// any, always precedes a repetition finding.
func Find(password string) []model.PatternFinding {
	runes := []rune(password)

	var findings []model.PatternFinding
	if seq, ok := findSequence(runes); ok {
		findings = append(findings, seq)
	}
	if rep, ok := findRepetition(runes); ok {
		findings = append(findings, rep)
	}
	return findings
}

// findSequence reports the first window whose code points ascend by one.
func findSequence(runes []rune) (model.PatternFinding, bool) {
	for i := 0; i+windowSize <= len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i]+2 {
			return model.NewSequenceFinding(string(runes[i : i+windowSize])), true
		}
	}
	return model.PatternFinding{}, false
}

// findRepetition reports the first window of three identical runes.
// The length is always windowSize, even when the run is longer.
func findRepetition(runes []rune) (model.PatternFinding, bool) {
	for i := 0; i+windowSize <= len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i+1] == runes[i+2] {
			return model.NewRepetitionFinding(runes[i], windowSize), true
		}
	}
	return model.PatternFinding{}, false
}
