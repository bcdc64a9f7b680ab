// Package cmd contains all CLI commands for pulsectl
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	variantPath string
	noColor     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pulsectl",
	Short: "Brand mention reporting CLI",
	Long: `pulsectl renders brand-mention reports from pre-aggregated CSV
exports as terminal tables: daily mention counts for selected brands,
top related channels or subreddits, and an optional top-10 view.

Example usage:
  pulsectl report                          # default selection, youtube variant
  pulsectl report --brands acme,globex     # explicit selection
  pulsectl report --top10                  # include the top-10-overall view
  pulsectl report --config configs/forum.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&variantPath, "config", "configs/youtube.yaml", "report variant file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
