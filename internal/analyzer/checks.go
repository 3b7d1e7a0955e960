package analyzer

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/nao1215/pwstrength/internal/entropy"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/pattern"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Score deductions and thresholds.
const (
	// MinLength is the length below which a password is very short.
	MinLength = 8

	// RecommendedLength is the length at which no length deduction applies.
	RecommendedLength = 12

	// MinClasses is the number of character classes needed to avoid the
	// variety deduction.
	MinClasses = 3

	shortDeduction   = 70
	mediumDeduction  = 30
	varietyDeduction = 25
	patternDeduction = 40
)

// Feedback messages.
const (
	MsgVeryShort      = "Very short password. Aim for at least 12 characters."
	MsgMediumLength   = "Good length (8-11), but 12+ is recommended."
	MsgGreatLength    = "Great length (12+ characters)."
	MsgLowVariety     = "Low variety. Mix uppercase, lowercase, numbers, and symbols."
	MsgGoodVariety    = "Excellent variety of character types."
	MsgNotBreached    = "Good news! Not found in any known data breaches."
	msgBreachedFormat = "CRITICAL: This password was found in %d data breaches!"
	msgEntropyFormat  = "Password Entropy: %.2f bits."
)

// state is the running analysis that checks read and modify.
type state struct {
	password string
	score    int
	result   model.Result
}

func (s *state) add(severity model.Severity, msg string) {
	s.result.Feedback = append(s.result.Feedback, model.Feedback{Severity: severity, Message: msg})
}

// check is one step of the analysis.
type check interface {
	// Do applies the check's deduction and appends its feedback.
	Do(ctx context.Context, s *state)

	// Name returns the check's name for logging purposes.
	Name() string
}

// lengthCheck deducts points for short passwords. Length is counted in
// code points, not bytes.
type lengthCheck struct{}

func (lengthCheck) Name() string { return "length" }

func (lengthCheck) Do(_ context.Context, s *state) {
	switch n := utf8.RuneCountInString(s.password); {
	case n < MinLength:
		s.score -= shortDeduction
		s.add(model.SeverityCritical, MsgVeryShort)
	case n < RecommendedLength:
		s.score -= mediumDeduction
		s.add(model.SeverityWarning, MsgMediumLength)
	default:
		s.add(model.SeveritySuccess, MsgGreatLength)
	}
}

// varietyCheck deducts points when fewer than MinClasses classes are used.
type varietyCheck struct{}

func (varietyCheck) Name() string { return "variety" }

func (varietyCheck) Do(_ context.Context, s *state) {
	if entropy.NewProfile(s.password).Classes() < MinClasses {
		s.score -= varietyDeduction
		s.add(model.SeverityCritical, MsgLowVariety)
		return
	}
	s.add(model.SeveritySuccess, MsgGoodVariety)
}

// patternCheck deducts a flat amount if any weak pattern is found,
// regardless of how many.
type patternCheck struct{}

func (patternCheck) Name() string { return "patterns" }

func (patternCheck) Do(_ context.Context, s *state) {
	findings := pattern.Find(s.password)
	if len(findings) == 0 {
		return
	}
	s.result.Patterns = findings
	for _, f := range findings {
		s.add(model.SeverityCritical, f.Message())
	}
	s.score -= patternDeduction
}

// breachCheck forces the score to zero for breached passwords.
type breachCheck struct {
	counter BreachCounter
	printer *message.Printer
}

func newBreachCheck(counter BreachCounter) breachCheck {
	return breachCheck{
		counter: counter,
		printer: message.NewPrinter(language.English),
	}
}

func (breachCheck) Name() string { return "breach" }

func (c breachCheck) Do(ctx context.Context, s *state) {
	count := c.counter.Count(ctx, s.password)
	if count < 0 {
		count = 0
	}
	s.result.BreachCount = count
	if count > 0 {
		s.score = 0
		s.add(model.SeverityCritical, c.printer.Sprintf(msgBreachedFormat, count))
		return
	}
	s.add(model.SeveritySuccess, MsgNotBreached)
}

// entropyCheck reports the entropy estimate. It never changes the score.
type entropyCheck struct{}

func (entropyCheck) Name() string { return "entropy" }

func (entropyCheck) Do(_ context.Context, s *state) {
	bits := entropy.Bits(s.password)
	s.result.EntropyBits = bits
	s.result.Crack = entropy.Crack(s.password)
	s.add(model.SeverityInfo, fmt.Sprintf(msgEntropyFormat, bits))
}
