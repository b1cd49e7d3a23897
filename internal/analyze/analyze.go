package analyze

import (
	"strings"

	"github.com/bugsniff/bugsniff/internal/rules"
	"github.com/bugsniff/bugsniff/internal/types"
)

// KindPattern tags findings produced by the rule-based line matcher.
const KindPattern = "pattern"

// Tuning holds the confidence heuristic parameters. The defaults carry
// over the original uncalibrated constants; they are deliberately
// configurable because nothing derives them.
type Tuning struct {
	Threshold        float64 // confidence above which a blob counts as buggy
	ComplexityWeight float64
	LineWeight       float64
	Cap              float64 // upper bound on confidence
}

// DefaultTuning returns the stock heuristic parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Threshold:        0.3,
		ComplexityWeight: 0.1,
		LineWeight:       0.001,
		Cap:              0.95,
	}
}

// Confidence maps a feature vector to a probability-like score in
// [0, Cap]. This is a monotonic heuristic, not a trained classifier; it
// never reads findings.
func (t Tuning) Confidence(f Features) float64 {
	complexity := float64(f.Conditionals + f.Loops)
	score := complexity*t.ComplexityWeight + float64(f.Lines)*t.LineWeight
	if score > t.Cap {
		return t.Cap
	}
	return score
}

// Analyzer applies a rule table and tuning to individual blobs. It holds
// no per-scan state, so one Analyzer is safe to share across goroutines.
type Analyzer struct {
	table  []rules.Rule
	tuning Tuning
}

// New builds an Analyzer over the given rule table and tuning.
func New(table []rules.Rule, tuning Tuning) *Analyzer {
	return &Analyzer{table: table, tuning: tuning}
}

// NewDefault builds an Analyzer with the built-in rules and stock tuning.
func NewDefault() *Analyzer {
	return New(rules.Default(), DefaultTuning())
}

// Rules returns the analyzer's rule table (read-only).
func (a *Analyzer) Rules() []rules.Rule { return a.table }

// Tuning returns the analyzer's heuristic parameters.
func (a *Analyzer) Tuning() Tuning { return a.tuning }

// MatchLines runs every rule against every line of the blob. Each rule
// that matches a line contributes one finding; rules never short-circuit
// each other. Output order is ascending line, then rule-table order
// within a line, and is deterministic for identical input.
func (a *Analyzer) MatchLines(blob []byte) []types.Finding {
	if len(blob) == 0 {
		return nil
	}
	var out []types.Finding
	for i, line := range strings.Split(string(blob), "\n") {
		for _, r := range a.table {
			if r.Pattern.MatchString(line) {
				out = append(out, types.Finding{
					Line:     i + 1,
					Severity: r.Severity,
					Message:  r.Message,
					Code:     strings.TrimSpace(line),
					Kind:     KindPattern,
				})
			}
		}
	}
	return out
}

// Aggregate folds findings into a per-severity breakdown. All four
// buckets are always present (zero-filled). A finding with a severity
// outside the enum fails the whole call.
func Aggregate(findings []types.Finding) (types.Breakdown, error) {
	var b types.Breakdown
	for _, f := range findings {
		if err := b.Add(f.Severity); err != nil {
			return types.Breakdown{}, err
		}
	}
	return b, nil
}

// Analyze runs the full per-blob pipeline: line matching, severity
// aggregation, feature extraction, and confidence scoring. The blob is
// opaque text; malformed or non-code input is never an error. An empty
// blob yields zero findings, confidence 0, and HasBugs false.
func (a *Analyzer) Analyze(blob []byte) (types.Result, error) {
	findings := a.MatchLines(blob)
	breakdown, err := Aggregate(findings)
	if err != nil {
		return types.Result{}, err
	}
	conf := a.tuning.Confidence(Extract(blob))
	if findings == nil {
		findings = []types.Finding{}
	}
	return types.Result{
		HasBugs:     conf > a.tuning.Threshold || len(findings) > 0,
		Confidence:  conf,
		Findings:    findings,
		TotalIssues: len(findings),
		Breakdown:   breakdown,
	}, nil
}
