package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/dragonfly-lang/dragonfly/cli/internal/ui"
)

// latestKnownVersion is the newest release this build knows about.
// TODO: fetch the latest release from the GitHub releases API instead.
const latestKnownVersion = "0.1.0"

// CheckForUpdates reports whether a newer release is available.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/dragonfly-lang/dragonfly/cli@latest\n")

		return nil
	}

	ui.PrintSuccess("You are on the latest version.")

	return nil
}

// GetDownloadURL returns the download URL for the current platform.
func GetDownloadURL(release string) string {
	return fmt.Sprintf(
		"https://github.com/dragonfly-lang/dragonfly/releases/download/v%s/dragonfly-%s-%s",
		release,
		runtime.GOOS,
		runtime.GOARCH,
	)
}
