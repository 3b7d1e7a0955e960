package analyzer

import (
	"context"
	"log/slog"

	"github.com/nao1215/pwstrength/internal/breach"
	"github.com/nao1215/pwstrength/internal/model"
)

// DefaultConcurrency is the default number of concurrent analyses in AnalyzeAll.
const DefaultConcurrency = 4

// BreachCounter reports how many times a password appears in a breach
// corpus. Implementations return 0 both when the password is not found and
// when the lookup cannot be completed. *breach.Client satisfies it.
type BreachCounter interface {
	Count(ctx context.Context, password string) int
}

// Analyzer runs the ordered checks. It holds no per-analysis state and is
// safe for concurrent use.
type Analyzer struct {
	checks      []check
	logger      *slog.Logger
	concurrency int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger. The password is never passed to it.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses in
// AnalyzeAll. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// New creates an Analyzer that uses counter for the breach check.
// A nil counter behaves like breach.Disabled.
func New(counter BreachCounter, opts ...Option) *Analyzer {
	if counter == nil {
		counter = breach.Disabled
	}

	a := &Analyzer{
		checks: []check{
			lengthCheck{},
			varietyCheck{},
			patternCheck{},
			newBreachCheck(counter),
			entropyCheck{},
		},
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// CheckNames returns the names of the checks in execution order.
func (a *Analyzer) CheckNames() []string {
	names := make([]string, len(a.checks))
	for i, c := range a.checks {
		names[i] = c.Name()
	}
	return names
}

// Analyze scores the password. It never fails: an unreachable breach
// service counts as not breached.
func (a *Analyzer) Analyze(ctx context.Context, password string) model.Result {
	s := &state{
		password: password,
		score:    model.MaxScore,
		result: model.Result{
			Feedback: make([]model.Feedback, 0, len(a.checks)+1),
		},
	}

	for _, c := range a.checks {
		c.Do(ctx, s)
		a.logger.Debug("check completed", "check", c.Name(), "score", s.score)
	}

	s.result.Score = model.ClampScore(s.score)
	s.result.Rating = model.RatingForScore(s.result.Score)
	return s.result
}
