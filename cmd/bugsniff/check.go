package bugsniff

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bugsniff/bugsniff/internal/analyze"
	"github.com/bugsniff/bugsniff/internal/report"
	"github.com/bugsniff/bugsniff/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Analyze individual files and print their findings",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	analyzer := analyze.NewDefault()

	opts := report.PrintOptions{
		NoColor: flagNoColor,
		Width:   terminalWidth(),
	}

	var total types.Breakdown
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		res, err := analyzer.Analyze(data)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", path, err)
		}
		total.Merge(res.Breakdown)

		if flagJSON {
			if err := report.WriteJSON(os.Stdout, res); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		report.PrintResult(os.Stdout, path, res, opts)
	}

	if flagFailOn != "" && report.ShouldFail(total, flagFailOn) {
		os.Exit(1)
	}
	return nil
}
