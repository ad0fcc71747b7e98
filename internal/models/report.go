package models

import "time"

// ReportEntry is the outcome of one requested metric within a report.
// Exactly one of Rows or Error is meaningful.
// swagger:model ReportEntry
type ReportEntry struct {
	// Metric name as requested
	// example: monthly_new_users
	Metric string `json:"metric"`

	// Result rows
	Rows []Row `json:"rows"`

	// Failure message for this metric
	// example: unknown metric "foo"
	Error string `json:"error,omitempty"`

	// Err keeps the typed failure for callers in process.
	Err error `json:"-"`
}

// Report is a named, ordered collection of metric results.
// swagger:model Report
type Report struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	GeneratedAt time.Time     `json:"generated_at"`
	Entries     []ReportEntry `json:"entries"`
}

// Failed returns the entries that carry an error.
func (r *Report) Failed() []ReportEntry {
	var failed []ReportEntry
	for _, e := range r.Entries {
		if e.Err != nil || e.Error != "" {
			failed = append(failed, e)
		}
	}
	return failed
}
