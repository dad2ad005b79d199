package main

import (
	"os"

	"github.com/dragonfly-lang/dragonfly/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
