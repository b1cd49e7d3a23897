package types

import "fmt"

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevCritical Severity = "critical"
	SevHigh     Severity = "high"
	SevMed      Severity = "medium"
	SevLow      Severity = "low"
)

// Severities lists the valid severities from most to least severe.
var Severities = []Severity{SevCritical, SevHigh, SevMed, SevLow}

// Valid reports whether s is one of the four canonical severities.
func (s Severity) Valid() bool {
	switch s {
	case SevCritical, SevHigh, SevMed, SevLow:
		return true
	}
	return false
}

// Rank returns an ordinal for severity comparison; higher is more severe.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 4
	case SevHigh:
		return 3
	case SevMed:
		return 2
	case SevLow:
		return 1
	}
	return 0
}

// Finding describes a single rule match at a specific line of a blob.
// Code holds the trimmed source line the rule fired on.
type Finding struct {
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Code     string   `json:"code"`
	Kind     string   `json:"type"`
}

// Breakdown counts findings per severity. All four buckets are always
// present in JSON output, zero-filled.
type Breakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Add increments the bucket for sev. It returns an error for severities
// outside the fixed enum rather than coercing them.
func (b *Breakdown) Add(sev Severity) error {
	switch sev {
	case SevCritical:
		b.Critical++
	case SevHigh:
		b.High++
	case SevMed:
		b.Medium++
	case SevLow:
		b.Low++
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeverity, sev)
	}
	return nil
}

// Merge adds every bucket of other into b.
func (b *Breakdown) Merge(other Breakdown) {
	b.Critical += other.Critical
	b.High += other.High
	b.Medium += other.Medium
	b.Low += other.Low
}

// Total returns the sum over all buckets.
func (b Breakdown) Total() int {
	return b.Critical + b.High + b.Medium + b.Low
}

// Count returns the bucket value for sev (0 for unknown severities).
func (b Breakdown) Count(sev Severity) int {
	switch sev {
	case SevCritical:
		return b.Critical
	case SevHigh:
		return b.High
	case SevMed:
		return b.Medium
	case SevLow:
		return b.Low
	}
	return 0
}

// Result is the aggregated detection outcome for one blob.
//
// Invariants: TotalIssues == len(Findings) == Breakdown.Total(), and
// HasBugs is true iff the confidence exceeded the configured threshold
// or at least one finding was produced.
type Result struct {
	HasBugs     bool      `json:"has_bugs"`
	Confidence  float64   `json:"confidence"`
	Findings    []Finding `json:"bugs_found"`
	TotalIssues int       `json:"total_issues"`
	Breakdown   Breakdown `json:"severity_breakdown"`
}

// FileEntry is the per-file line item inside a ProjectSummary.
type FileEntry struct {
	Path        string  `json:"path"`
	HasBugs     bool    `json:"has_bugs"`
	TotalIssues int     `json:"total_issues"`
	Confidence  float64 `json:"confidence"`
}

// ProjectSummary is the aggregated outcome across many files.
// Confidence is the arithmetic mean of per-file confidences, 0 when no
// files were scanned. Files preserves the order results were folded in.
type ProjectSummary struct {
	TotalFiles    int         `json:"total_files"`
	FilesWithBugs int         `json:"files_with_bugs"`
	TotalIssues   int         `json:"total_issues"`
	Breakdown     Breakdown   `json:"severity_breakdown"`
	Files         []FileEntry `json:"files"`
	Confidence    float64     `json:"confidence"`
	Skipped       []string    `json:"skipped,omitempty"`
}
