package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dragonfly-lang/dragonfly/cli/internal/config"
	"github.com/dragonfly-lang/dragonfly/cli/internal/ui"
	"github.com/dragonfly-lang/dragonfly/cli/internal/watch"
	"github.com/dragonfly-lang/dragonfly/compiler"
	"github.com/dragonfly-lang/dragonfly/internal/debug"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file>",
	Short: "Compile a source file to a Prisma schema and TypeScript types",
	Long: `Build compiles a source file and writes the generated artefacts.

The output directory receives a prisma/schema.prisma file plus one
TypeScript file per model and per enum. Existing files are overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

var (
	buildOutputDir string
	buildWatch     bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutputDir, "output", "o", compiler.DefaultOutputDir, "The output directory")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "Rebuild whenever the source file changes")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cmd.Help()
	}

	path := args[0]

	if buildWatch {
		return watchAndBuild(path, buildOutputDir)
	}

	if err := buildOnce(path, buildOutputDir); err != nil {
		ui.PrintDiagnostic(err)
		os.Exit(1)
	}

	return nil
}

func buildOnce(path, outputDir string) error {
	debug.Debug("building source file", "path", path, "output", outputDir)

	spinner, _ := ui.PrintSpinner("Building " + path)

	err := compiler.Build(config.AppFs, path, outputDir)

	if spinner != nil {
		_ = spinner.Stop()
	}

	if err != nil {
		return err
	}

	ui.PrintSuccess("Generated prisma and typescript output in `%s`.", outputDir)

	return nil
}

// watchAndBuild rebuilds on every change until interrupted. A failing
// rebuild is reported but does not stop the watch loop.
func watchAndBuild(path, outputDir string) error {
	watcher, err := watch.NewWatcher(path, func() error {
		if err := buildOnce(path, outputDir); err != nil {
			ui.PrintDiagnostic(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := watcher.Start(); err != nil {
		return err
	}

	ui.PrintInfo("Watching %s for changes. Press Ctrl+C to stop.", path)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	return watcher.Stop()
}
