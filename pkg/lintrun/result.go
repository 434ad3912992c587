package lintrun

import "github.com/yaklabco/lintfront/pkg/collect"

// Result accumulates the outcome of one run. Diagnostics and Data are
// append-only: entries are never mutated after being recorded.
type Result struct {
	// RunID uniquely identifies this run in logs and reports.
	RunID string

	// Files is the ordered list of collected files.
	Files []string

	// Diagnostics holds every analyzer error, tagged by file.
	Diagnostics []Diagnostic

	// Data holds per-file analyzer metadata, tagged the same way.
	Data []Metadata

	// Warnings lists non-fatal collection problems (skipped items).
	Warnings []collect.Warning
}

// OK reports overall success: no diagnostics were accumulated across any
// collected file. An empty but successfully collected file set is a success.
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}
