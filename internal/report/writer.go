package report

import (
	"io"

	"github.com/nao1215/pwstrength/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// ratingIcon returns the icon shown next to a rating.
func ratingIcon(r model.Rating) string {
	switch r {
	case model.RatingVeryStrong:
		return "🚀"
	case model.RatingStrong:
		return "👍"
	case model.RatingMedium:
		return "😐"
	default:
		return "💀"
	}
}

// severityIcon returns the icon that prefixes a feedback line.
func severityIcon(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "❌"
	case model.SeverityWarning:
		return "⚠️"
	case model.SeveritySuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}

// entryTitle returns the heading for an entry.
func entryTitle(e model.Entry) string {
	if e.Label == "" {
		return "Password"
	}
	return e.Label
}

// ratingOrder lists ratings from strongest to weakest for summaries.
var ratingOrder = []model.Rating{
	model.RatingVeryStrong,
	model.RatingStrong,
	model.RatingMedium,
	model.RatingWeak,
}
