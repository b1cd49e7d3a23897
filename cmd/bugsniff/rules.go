package bugsniff

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bugsniff/bugsniff/internal/report"
	"github.com/bugsniff/bugsniff/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in detection rules",
		RunE:  runRules,
	}
	rootCmd.AddCommand(cmd)
}

func runRules(_ *cobra.Command, _ []string) error {
	if flagJSON {
		type ruleInfo struct {
			ID       string `json:"id"`
			Severity string `json:"severity"`
			Pattern  string `json:"pattern"`
			Message  string `json:"message"`
		}
		out := make([]ruleInfo, 0, len(rules.Default()))
		for _, r := range rules.Default() {
			out = append(out, ruleInfo{
				ID:       r.ID,
				Severity: string(r.Severity),
				Pattern:  r.Pattern.String(),
				Message:  r.Message,
			})
		}
		return report.WriteJSON(os.Stdout, out)
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"ID", "SEVERITY", "MESSAGE"})
	for _, r := range rules.Default() {
		_ = table.Append([]string{r.ID, string(r.Severity), r.Message})
	}
	return table.Render()
}
