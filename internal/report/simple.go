package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/pwstrength/internal/model"
)

const (
	analysisHeader = "--- Password Strength Analysis ---"
	feedbackHeader = "--- Detailed Feedback ---"
	crackHeader    = "--- Crack Estimate ---"
	summaryHeader  = "--- Summary ---"
	footerRule     = "---------------------------------"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// color enables ANSI colors. The caller decides whether the output
	// supports them.
	color bool

	// verbose adds the crack-time estimate to each entry.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables ANSI colors.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.color = enabled
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
// Colors are off unless WithColor(true) is given.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	for _, entry := range report.Entries {
		w.writeEntry(&sb, entry, report.IsBatch())
	}

	if report.IsBatch() {
		w.writeSummary(&sb, report)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeEntry writes the analysis of a single password.
func (w *SimpleWriter) writeEntry(sb *strings.Builder, entry model.Entry, labeled bool) {
	r := entry.Result

	sb.WriteString("\n")
	sb.WriteString(analysisHeader)
	sb.WriteString("\n")
	if labeled {
		sb.WriteString(fmt.Sprintf("Entry: %s\n", entryTitle(entry)))
	}
	rating := fmt.Sprintf("%s %s", ratingIcon(r.Rating), r.Rating)
	sb.WriteString(fmt.Sprintf("Overall Rating: %s\n", w.paint(ratingColor(r.Rating), rating)))
	sb.WriteString(fmt.Sprintf("Final Score: %d/%d\n", r.Score, model.MaxScore))

	sb.WriteString("\n")
	sb.WriteString(feedbackHeader)
	sb.WriteString("\n")
	for _, f := range r.Feedback {
		line := fmt.Sprintf("- %s %s", severityIcon(f.Severity), f.Message)
		sb.WriteString(w.paint(severityColor(f.Severity), line))
		sb.WriteString("\n")
	}

	if w.verbose {
		sb.WriteString("\n")
		sb.WriteString(crackHeader)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Guessability Score: %d/4\n", r.Crack.Score))
		sb.WriteString(fmt.Sprintf("Estimated Crack Time: %s\n", r.Crack.CrackTimeDisplay))
		sb.WriteString(fmt.Sprintf("Pattern Entropy: %.2f bits\n", r.Crack.Entropy))
	}

	sb.WriteString(footerRule)
	sb.WriteString("\n")
}

// writeSummary writes rating totals for a batch.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	counts := report.RatingCounts()

	sb.WriteString("\n")
	sb.WriteString(summaryHeader)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Analyzed: %d\n", len(report.Entries)))
	for _, rating := range ratingOrder {
		label := fmt.Sprintf("%s %s", ratingIcon(rating), rating)
		sb.WriteString(fmt.Sprintf("%s: %d\n", w.paint(ratingColor(rating), label), counts[rating]))
	}

	breached := report.BreachedCount()
	line := fmt.Sprintf("Breached: %d", breached)
	if breached > 0 {
		line = w.paint(color.FgRed, line)
	}
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(footerRule)
	sb.WriteString("\n")
}

// paint colors s when colors are enabled.
func (w *SimpleWriter) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if w.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func ratingColor(r model.Rating) color.Attribute {
	switch r {
	case model.RatingVeryStrong, model.RatingStrong:
		return color.FgGreen
	case model.RatingMedium:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

func severityColor(s model.Severity) color.Attribute {
	switch s {
	case model.SeverityCritical:
		return color.FgRed
	case model.SeverityWarning:
		return color.FgYellow
	case model.SeveritySuccess:
		return color.FgGreen
	default:
		return color.FgCyan
	}
}
