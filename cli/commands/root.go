// Package commands implements the dragonfly command line interface.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dragonfly-lang/dragonfly/cli/internal/config"
	"github.com/dragonfly-lang/dragonfly/cli/internal/ui"
	"github.com/dragonfly-lang/dragonfly/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "dragonfly",
	Short: "Compile dragonfly source files to a Prisma schema and TypeScript types",
	Long: `Dragonfly compiles a declarative data-model description into a Prisma
schema and matching TypeScript type declarations.

A source file declares enums, models, and queries. The compiler checks
the whole program before emitting anything, so a successful build always
produces a consistent schema.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugEnabled || os.Getenv("DRAGONFLY_DEBUG") != "")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			ui.PrintError("Unknown command: %s", args[0])
			_ = cmd.Help()
			os.Exit(1)
		}

		return cmd.Help()
	},
}

var debugEnabled bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Enable debug logging")
}

// Execute runs the CLI. Command errors have already been reported by the
// time it returns; the caller only decides the exit code.
func Execute() error {
	cfg, err := config.LoadConfig()
	if err == nil && cfg.Debug {
		debugEnabled = true
	}

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		return err
	}

	return nil
}
