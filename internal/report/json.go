package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/pwstrength/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// version is recorded in the output when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// WithVersion records the pwstrength version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the top-level JSON document.
type JSONReport struct {
	// Version is the pwstrength version that generated this report.
	Version string `json:"version,omitempty"`

	// Report holds the results.
	Report *model.Report `json:"report"`

	// Summary totals the results.
	Summary JSONSummary `json:"summary"`
}

// JSONSummary totals a report.
type JSONSummary struct {
	Analyzed   int `json:"analyzed"`
	Breached   int `json:"breached"`
	VeryStrong int `json:"very_strong"`
	Strong     int `json:"strong"`
	Medium     int `json:"medium"`
	Weak       int `json:"weak"`
}

// NewJSONReport wraps report with its summary.
func NewJSONReport(report *model.Report, version string) *JSONReport {
	counts := report.RatingCounts()
	return &JSONReport{
		Version: version,
		Report:  report,
		Summary: JSONSummary{
			Analyzed:   len(report.Entries),
			Breached:   report.BreachedCount(),
			VeryStrong: counts[model.RatingVeryStrong],
			Strong:     counts[model.RatingStrong],
			Medium:     counts[model.RatingMedium],
			Weak:       counts[model.RatingWeak],
		},
	}
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(NewJSONReport(report, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
