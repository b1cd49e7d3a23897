package core

import (
	"github.com/bugsniff/bugsniff/internal/analyze"
	"github.com/bugsniff/bugsniff/internal/project"
	"github.com/bugsniff/bugsniff/internal/rules"
	"github.com/bugsniff/bugsniff/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = project.Config
type Finding = types.Finding
type Result = types.Result
type ProjectSummary = types.ProjectSummary
type Tuning = analyze.Tuning

// Scan is the stable entrypoint for other programs. It walks cfg.Root and
// returns the aggregated project summary.
func Scan(cfg Config) (ProjectSummary, error) {
	return project.Scan(cfg)
}

// Analyze runs the detection rules over a single blob of source text.
func Analyze(blob []byte) (Result, error) {
	return analyze.NewDefault().Analyze(blob)
}

// RuleIDs returns the list of built-in rule IDs in evaluation order.
// This is exposed for convenience to avoid importing internals directly.
func RuleIDs() []string { return rules.IDs() }
