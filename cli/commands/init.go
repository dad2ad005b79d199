package commands

import (
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dragonfly-lang/dragonfly/cli/internal/config"
	"github.com/dragonfly-lang/dragonfly/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a new project",
	Long: `Init scaffolds a new project: a starter source file and a .gitignore
that excludes the generated output.

Files that already exist are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

const sampleSource = `enum Role {
  User
  Admin
}

model User {
  name: String
  role: Role
  posts: [@Post]
}

model Post {
  title: String
  published: Boolean
}

query users($role: Role): [User] {
  user {
    name
    posts {
      title
    }
  }
  where {
    user {
      role {
        equals: $role
      }
    }
  }
}
`

const emptySource = `model User {
  name: String
}
`

const gitignoreContents = `# Generated output
out/

# Environment variables
.env
.env.local
`

func runInit(cmd *cobra.Command, args []string) error {
	directory := "."
	if len(args) > 0 {
		directory = args[0]
	}

	ui.PrintHeader("Dragonfly", "New project")

	sourceName := "app.dfly"
	if err := survey.AskOne(&survey.Input{
		Message: "Source file name:",
		Default: sourceName,
	}, &sourceName); err != nil {
		return err
	}

	withSample := true
	if err := survey.AskOne(&survey.Confirm{
		Message: "Include sample declarations?",
		Default: true,
	}, &withSample); err != nil {
		return err
	}

	if directory != "." {
		if err := config.AppFs.MkdirAll(directory, 0o755); err != nil {
			return err
		}
	}

	contents := emptySource
	if withSample {
		contents = sampleSource
	}

	sourcePath := filepath.Join(directory, sourceName)
	if err := createFile(sourcePath, contents); err != nil {
		return err
	}

	gitignorePath := filepath.Join(directory, ".gitignore")
	if err := createFile(gitignorePath, gitignoreContents); err != nil {
		return err
	}

	nextSteps := "# Next steps\n\n" +
		"1. Edit `" + sourcePath + "` to describe your data model.\n" +
		"2. Run `dragonfly check " + sourcePath + "` to validate it.\n" +
		"3. Run `dragonfly build " + sourcePath + "` to generate the Prisma schema and TypeScript types.\n"

	return ui.PrintMarkdown(nextSteps)
}

// createFile writes contents to path unless the file already exists.
func createFile(path, contents string) error {
	if exists, _ := afero.Exists(config.AppFs, path); exists {
		ui.PrintWarning("Skipping %s, the file already exists.", path)

		return nil
	}

	if err := afero.WriteFile(config.AppFs, path, []byte(contents), 0o644); err != nil {
		return err
	}

	ui.PrintSuccess("Created %s.", path)

	return nil
}
