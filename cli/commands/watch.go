package commands

import (
	"github.com/spf13/cobra"

	"github.com/dragonfly-lang/dragonfly/compiler"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file>",
	Short: "Rebuild a source file whenever it changes",
	Long: `Watch compiles a source file and rebuilds it on every change.

Rebuilds are debounced, so a burst of editor writes triggers a single
compilation. A failing rebuild is reported without stopping the loop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var watchOutputDir string

func init() {
	watchCmd.Flags().StringVarP(&watchOutputDir, "output", "o", compiler.DefaultOutputDir, "The output directory")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cmd.Help()
	}

	return watchAndBuild(args[0], watchOutputDir)
}
