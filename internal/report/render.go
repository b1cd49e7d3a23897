package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/bugsniff/bugsniff/internal/types"
)

// PrintOptions controls rendering of scan output.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	Width        int // terminal width for code truncation; 0 = no limit
}

var (
	critColor = color.New(color.FgRed, color.Bold)
	highColor = color.New(color.FgRed)
	medColor  = color.New(color.FgYellow)
	lowColor  = color.New(color.FgCyan)
)

func severityLabel(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.SevCritical:
		return critColor.Sprint(s)
	case types.SevHigh:
		return highColor.Sprint(s)
	case types.SevMed:
		return medColor.Sprint(s)
	default:
		return lowColor.Sprint(s)
	}
}

// PrintResult renders a single-blob result in plain columnar form,
// mirroring the layout of the project scan output.
func PrintResult(w io.Writer, path string, res types.Result, opts PrintOptions) {
	status := "clean"
	if res.HasBugs {
		status = "issues found"
	}
	fmt.Fprintf(w, "%s: %s\n", path, status)
	fmt.Fprintf(w, "Confidence: %.2f\n", res.Confidence)
	fmt.Fprintf(w, "Total issues: %d\n", res.TotalIssues)
	printBreakdown(w, res.Breakdown)
	if len(res.Findings) > 0 {
		fmt.Fprintln(w)
		for _, f := range res.Findings {
			code := truncate(f.Code, opts.Width)
			fmt.Fprintf(w, "  line %-5d %-8s %s\n", f.Line, severityLabel(f.Severity, opts.NoColor), f.Message)
			fmt.Fprintf(w, "             %s\n", code)
		}
	}
}

// PrintSummary renders a project summary as a bordered table of files
// plus a severity footer.
func PrintSummary(w io.Writer, s types.ProjectSummary, opts PrintOptions) {
	if s.TotalFiles == 0 {
		fmt.Fprintln(w, "No files scanned")
		printFooter(w, s, opts)
		return
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"FILE", "STATUS", "ISSUES", "CONFIDENCE"})
	for _, f := range s.Files {
		status := "clean"
		if f.HasBugs {
			status = "issues"
		}
		_ = table.Append([]string{f.Path, status, fmt.Sprintf("%d", f.TotalIssues), fmt.Sprintf("%.1f%%", f.Confidence*100)})
	}
	_ = table.Render()

	printFooter(w, s, opts)
}

// PrintText renders a project summary without table borders, one file
// per line.
func PrintText(w io.Writer, s types.ProjectSummary, opts PrintOptions) {
	if s.TotalFiles == 0 {
		fmt.Fprintln(w, "No files scanned")
		printFooter(w, s, opts)
		return
	}
	maxPath := 4
	for _, f := range s.Files {
		if len(f.Path) > maxPath {
			maxPath = len(f.Path)
		}
	}
	for _, f := range s.Files {
		status := "clean"
		if f.HasBugs {
			status = "issues"
		}
		fmt.Fprintf(w, "%-*s  %-6s  %3d  %.1f%%\n", maxPath, f.Path, status, f.TotalIssues, f.Confidence*100)
	}
	printFooter(w, s, opts)
}

func printFooter(w io.Writer, s types.ProjectSummary, opts PrintOptions) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files scanned: %d\n", s.TotalFiles)
	fmt.Fprintf(w, "Files with issues: %d\n", s.FilesWithBugs)
	fmt.Fprintf(w, "Total issues: %d\n", s.TotalIssues)
	fmt.Fprintf(w, "Average confidence: %.1f%%\n", s.Confidence*100)
	printBreakdown(w, s.Breakdown)
	if len(s.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped files: %d\n", len(s.Skipped))
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func printBreakdown(w io.Writer, b types.Breakdown) {
	fmt.Fprintf(w, "Severity: critical %d, high %d, medium %d, low %d\n",
		b.Critical, b.High, b.Medium, b.Low)
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// ShouldFail reports whether the breakdown contains findings at or above
// the failOn severity. Unknown failOn values fall back to medium.
func ShouldFail(b types.Breakdown, failOn string) bool {
	th := types.Severity(failOn)
	if !th.Valid() {
		th = types.SevMed
	}
	for _, sev := range types.Severities {
		if sev.Rank() < th.Rank() {
			continue
		}
		if b.Count(sev) > 0 {
			return true
		}
	}
	return false
}
