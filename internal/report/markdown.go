package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/pwstrength/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter

	printer *message.Printer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	if report.IsBatch() {
		w.writeSummary(md, report)
	}

	for _, entry := range report.Entries {
		w.writeEntry(md, entry)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and metadata.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Password Strength Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Passwords Analyzed", strconv.Itoa(len(report.Entries))},
		},
	})
	md.PlainText("")
}

// writeSummary writes the rating distribution of a batch.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	counts := report.RatingCounts()

	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(ratingOrder)+1)
	for _, rating := range ratingOrder {
		rows = append(rows, []string{ratingIcon(rating) + " " + rating.String(), strconv.Itoa(counts[rating])})
	}
	rows = append(rows, []string{"**Breached**", "**" + strconv.Itoa(report.BreachedCount()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Rating", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Rating Distribution"),
		piechart.WithShowData(true),
	)
	for _, rating := range ratingOrder {
		if counts[rating] > 0 {
			chart.LabelAndIntValue(rating.String(), uint64(counts[rating])) //nolint:gosec // counts are non-negative
		}
	}
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")

	if n := report.BreachedCount(); n > 0 {
		md.Cautionf("%d of %d passwords were found in known data breaches.", n, len(report.Entries))
		md.PlainText("")
	}
}

// writeEntry writes the result of one password.
func (w *MarkdownWriter) writeEntry(md *markdown.Markdown, entry model.Entry) {
	r := entry.Result

	md.H2(entryTitle(entry))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Overall Rating", ratingIcon(r.Rating) + " " + r.Rating.String()},
			{"Final Score", fmt.Sprintf("%d/%d", r.Score, model.MaxScore)},
			{"Entropy", fmt.Sprintf("%.2f bits", r.EntropyBits)},
			{"Breach Count", w.printer.Sprintf("%d", r.BreachCount)},
			{"Issues", issueCount(r)},
			{"Estimated Crack Time", crackTime(r.Crack)},
		},
	})
	md.PlainText("")

	w.writeAlert(md, r)

	md.H3("Detailed Feedback")
	md.PlainText("")

	rows := make([][]string, len(r.Feedback))
	for i, f := range r.Feedback {
		rows[i] = []string{severityIcon(f.Severity) + " " + f.Severity.String(), f.Message}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Message"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert writes an alert matching the result.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, r model.Result) {
	switch {
	case r.Breached():
		md.Cautionf("This password was found in %s data breaches. Do not use it.", w.printer.Sprintf("%d", r.BreachCount))
	case r.Rating == model.RatingWeak:
		md.Warningf("This password is weak (score %d/%d).", r.Score, model.MaxScore)
	case r.Rating == model.RatingVeryStrong:
		md.Tip("This password is very strong.")
	default:
		md.Note("See the feedback below to strengthen this password.")
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [pwstrength](https://github.com/nao1215/pwstrength)*")
}

// issueCount summarizes the failed and improvable checks.
func issueCount(r model.Result) string {
	critical := len(r.FeedbackBySeverity(model.SeverityCritical))
	warning := len(r.FeedbackBySeverity(model.SeverityWarning))
	return fmt.Sprintf("%d critical, %d warning", critical, warning)
}

func crackTime(c model.CrackEstimate) string {
	if c.CrackTimeDisplay == "" {
		return "-"
	}
	return c.CrackTimeDisplay
}
