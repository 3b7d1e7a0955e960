package model

import "time"

// Entry is one analyzed password inside a Report.
type Entry struct {
	// Label identifies the entry without revealing the password,
	// e.g. "line 3". Empty for single-password reports.
	Label string `json:"label,omitempty"`

	// Result is the analysis result.
	Result Result `json:"result"`
}

// Report groups one or more results for output.
type Report struct {
	// GeneratedAt is when the analysis finished.
	GeneratedAt time.Time `json:"generated_at"`

	// Entries holds the results in input order.
	Entries []Entry `json:"entries"`
}

// NewReport creates an empty report stamped with the given time.
func NewReport(generatedAt time.Time) *Report {
	return &Report{
		GeneratedAt: generatedAt,
		Entries:     make([]Entry, 0),
	}
}

// AddEntry appends a result to the report.
func (r *Report) AddEntry(label string, result Result) {
	r.Entries = append(r.Entries, Entry{Label: label, Result: result})
}

// IsBatch reports whether the report holds more than one entry.
func (r *Report) IsBatch() bool {
	return len(r.Entries) > 1
}

// RatingCounts returns how many entries received each rating.
func (r *Report) RatingCounts() map[Rating]int {
	counts := make(map[Rating]int, 4)
	for _, e := range r.Entries {
		counts[e.Result.Rating]++
	}
	return counts
}

// BreachedCount returns how many entries were found in the breach corpus.
func (r *Report) BreachedCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Result.Breached() {
			n++
		}
	}
	return n
}
