package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragonfly-lang/dragonfly/cli/internal/update"
	"github.com/dragonfly-lang/dragonfly/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

var (
	versionVerbose bool
	versionCheck   bool
)

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Print build metadata")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check for a newer release")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	if versionVerbose {
		fmt.Println(info.FullString())
	} else {
		fmt.Println(info.String())
	}

	if versionCheck {
		return update.CheckForUpdates(info.Version)
	}

	return nil
}
