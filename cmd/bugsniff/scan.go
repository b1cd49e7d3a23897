package bugsniff

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	progressbar "github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bugsniff/bugsniff/internal/analyze"
	"github.com/bugsniff/bugsniff/internal/audit"
	"github.com/bugsniff/bugsniff/internal/config"
	"github.com/bugsniff/bugsniff/internal/project"
	"github.com/bugsniff/bugsniff/internal/report"
)

var (
	flagPath       string
	flagInclude    string
	flagExclude    string
	flagExtensions string
	flagMaxBytes   int64
	flagText       bool
	flagHTML       string
	flagOut        string
	flagNoAudit    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a project tree for suspicious constructs",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&flagExtensions, "extensions", "", "comma-separated file extensions to scan (default .py,.js,.ts,.jsx,.tsx)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagText, "text", false, "output in plain text columnar format instead of a table")
	cmd.Flags().StringVar(&flagHTML, "html", "", "write an HTML report to this path")
	cmd.Flags().StringVar(&flagOut, "out", "", "write the JSON summary to this path")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not append this scan to the history log")
}

func runScan(_ *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}
	tuning := resolveTuning(lcfg, gcfg)

	cfg := project.Config{
		Root:            abs,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		Extensions:      pickString(flagExtensions, lcfg.Extensions, gcfg.Extensions),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		DefaultExcludes: flagDefaultExcludes,
		Tuning:          &tuning,
	}

	quiet := flagJSON || flagSARIF
	if !quiet {
		fmt.Fprintf(os.Stderr, "Scanning %s...\n", abs)
	}

	// Optional progress bar over the estimated target count.
	if total, err := project.CountTargets(cfg); err == nil && total > 0 && !quiet {
		bar := progressbar.NewOptions(total, progressbar.OptionSetWriter(os.Stderr))
		var mu sync.Mutex
		cfg.Progress = func() {
			mu.Lock()
			_ = bar.Add(1)
			mu.Unlock()
		}
	}

	res, err := project.ScanWithStats(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}
	if cfg.Progress != nil {
		fmt.Fprintln(os.Stderr)
	}
	summary := res.Summary

	opts := report.PrintOptions{
		NoColor:      pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		Width:        terminalWidth(),
	}

	switch {
	case flagSARIF:
		files := make([]report.FileFindings, 0, len(res.PerFile))
		for _, fr := range res.PerFile {
			files = append(files, report.FileFindings{Path: fr.Path, Findings: fr.Result.Findings})
		}
		if err := report.WriteSARIF(os.Stdout, version, files); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, summary); err != nil {
			return err
		}
	case flagText:
		report.PrintText(os.Stdout, summary, opts)
	default:
		report.PrintSummary(os.Stdout, summary, opts)
	}

	if flagOut != "" {
		if err := writeFileReport(flagOut, func(f *os.File) error {
			return report.WriteJSON(f, summary)
		}); err != nil {
			fmt.Fprintln(os.Stderr, "json report warning:", err)
		}
	}
	if flagHTML != "" {
		if err := writeFileReport(flagHTML, func(f *os.File) error {
			return report.WriteHTML(f, summary)
		}); err != nil {
			fmt.Fprintln(os.Stderr, "html report warning:", err)
		}
	}

	if !flagNoAudit {
		rec := audit.CreateScanRecord(abs, summary, res.Duration)
		if err := audit.NewAuditLog(abs).LogScan(rec); err != nil && !quiet {
			fmt.Fprintln(os.Stderr, "audit warning:", err)
		}
	}

	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	if failOn != "" && report.ShouldFail(summary.Breakdown, failOn) {
		os.Exit(1)
	}
	return nil
}

func resolveTuning(lcfg, gcfg config.FileConfig) analyze.Tuning {
	if lcfg.Tuning != nil {
		return lcfg.GetTuning()
	}
	if gcfg.Tuning != nil {
		return gcfg.GetTuning()
	}
	return analyze.DefaultTuning()
}

func writeFileReport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}
