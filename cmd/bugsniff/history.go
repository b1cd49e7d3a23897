package bugsniff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bugsniff/bugsniff/internal/audit"
	"github.com/bugsniff/bugsniff/internal/report"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show past scans recorded in the audit log",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "maximum number of records to show")
}

func runHistory(_ *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, _ := filepath.Abs(root)

	records, err := audit.NewAuditLog(abs).LoadHistory()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("No scan history")
			return nil
		}
		return err
	}
	if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
		records = records[:flagHistoryLimit]
	}

	if flagJSON {
		return report.WriteJSON(os.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Println("No scan history")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %s\n", r.Timestamp.Format("2006-01-02 15:04:05"), r.ScanID)
		fmt.Printf("  files: %d (%d with issues)  issues: %d  confidence: %.1f%%  duration: %s\n",
			r.TotalFiles, r.FilesWithBugs, r.TotalIssues, r.Confidence*100, r.Duration)
	}
	return nil
}
