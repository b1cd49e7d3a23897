package project

import "github.com/bugsniff/bugsniff/internal/types"

// Aggregator folds per-file results into a ProjectSummary. It is local
// to one scan invocation and discarded after Summary is taken; it is not
// safe for concurrent use (fold after collecting, or serialize).
type Aggregator struct {
	summary types.ProjectSummary
	confSum float64
}

// NewAggregator returns an empty fold accumulator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Fold adds one file's result. Files are reported in fold order.
func (a *Aggregator) Fold(path string, res types.Result) {
	a.summary.TotalFiles++
	if res.HasBugs {
		a.summary.FilesWithBugs++
	}
	a.summary.TotalIssues += res.TotalIssues
	a.summary.Breakdown.Merge(res.Breakdown)
	a.summary.Files = append(a.summary.Files, types.FileEntry{
		Path:        path,
		HasBugs:     res.HasBugs,
		TotalIssues: res.TotalIssues,
		Confidence:  res.Confidence,
	})
	a.confSum += res.Confidence
}

// Skip records a file that could not be read or analyzed. Skipped files
// do not contribute to any totals.
func (a *Aggregator) Skip(path string) {
	a.summary.Skipped = append(a.summary.Skipped, path)
}

// Summary freezes and returns the project summary. Confidence is the
// mean over folded files, 0 when none were folded.
func (a *Aggregator) Summary() types.ProjectSummary {
	if a.summary.TotalFiles > 0 {
		a.summary.Confidence = a.confSum / float64(a.summary.TotalFiles)
	}
	if a.summary.Files == nil {
		a.summary.Files = []types.FileEntry{}
	}
	return a.summary
}
