package model

import (
	"fmt"
	"strings"
)

// PatternKind tags a PatternFinding.
type PatternKind string

const (
	// PatternSequence is a run of three strictly ascending code points, e.g. "abc".
	PatternSequence PatternKind = "sequence"

	// PatternRepetition is a run of three identical characters, e.g. "aaa".
	PatternRepetition PatternKind = "repetition"
)

// PatternFinding describes one weak pattern detected in a password.
//
// For PatternSequence, Substring holds the matched three characters.
// For PatternRepetition, Char holds the repeated character and Length is
// always 3, even when the real run is longer.
type PatternFinding struct {
	Kind      PatternKind `json:"kind"`
	Substring string      `json:"substring,omitempty"`
	Char      string      `json:"char,omitempty"`
	Length    int         `json:"length"`
}

// NewSequenceFinding creates a sequence finding for the given window.
func NewSequenceFinding(window string) PatternFinding {
	return PatternFinding{
		Kind:      PatternSequence,
		Substring: window,
		Length:    len([]rune(window)),
	}
}

// NewRepetitionFinding creates a repetition finding for the given character.
func NewRepetitionFinding(c rune, length int) PatternFinding {
	return PatternFinding{
		Kind:   PatternRepetition,
		Char:   string(c),
		Length: length,
	}
}

// Matched returns the characters the finding matched.
func (f PatternFinding) Matched() string {
	if f.Kind == PatternRepetition {
		return strings.Repeat(f.Char, f.Length)
	}
	return f.Substring
}

// Message returns the feedback line for the finding.
func (f PatternFinding) Message() string {
	switch f.Kind {
	case PatternSequence:
		return fmt.Sprintf("Contains a sequence ('%s').", f.Matched())
	case PatternRepetition:
		return fmt.Sprintf("Contains a repetition ('%s').", f.Matched())
	default:
		return fmt.Sprintf("Contains a weak pattern ('%s').", f.Matched())
	}
}
