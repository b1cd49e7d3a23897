package bugsniff

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON            bool
	flagSARIF           bool
	flagNoColor         bool
	flagThreads         int
	flagFailOn          string
	flagNoCache         bool
	flagDefaultExcludes bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the bugsniff CLI.
var rootCmd = &cobra.Command{
	Use:           "bugsniff",
	Short:         "Find suspicious constructs in source text",
	Long:          "bugsniff scans source files for suspicious constructs (hardcoded secrets, dangerous calls, unsafe comparisons, stray debug output) and reports them ranked by severity.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the bugsniff CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit non-zero on findings at or above low|medium|high|critical")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, venv, dist, etc.)")
}
