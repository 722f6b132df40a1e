package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "csgx [files...]",
	Short: "csgx is a PostScript-like stack language interpreter",
	Long: `csgx runs programs written in a small PostScript-like,
stack-oriented language: an operand stack, a layered dictionary
stack, and a closed set of arithmetic, comparison, stack-manipulation
and control-flow operators.

Filenames given on the command line are executed in order. Pass -i to
additionally drop into an interactive line loop after they finish.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFiles,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML limits/prompt file")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "drop into an interactive line loop after running the given files")
}
