package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dragonfly-lang/dragonfly/cli/internal/config"
	"github.com/dragonfly-lang/dragonfly/cli/internal/ui"
	"github.com/dragonfly-lang/dragonfly/compiler"
	"github.com/dragonfly-lang/dragonfly/internal/debug"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a source file without generating output",
	Long: `Check parses and type-checks a source file.

No artefacts are written. The first error found is reported and the
command exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cmd.Help()
	}

	path := args[0]
	debug.Debug("checking source file", "path", path)

	program, err := compiler.Load(config.AppFs, path)
	if err != nil {
		ui.PrintDiagnostic(err)
		os.Exit(1)
	}

	ui.PrintSuccess("No errors found in `%s`.", path)

	ui.PrintTable(
		[]string{"Declaration", "Count"},
		[][]string{
			{"models", fmt.Sprintf("%d", program.Models.Len())},
			{"enums", fmt.Sprintf("%d", program.Enums.Len())},
			{"queries", fmt.Sprintf("%d", program.Queries.Len())},
		},
	)

	return nil
}
