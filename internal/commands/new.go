package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyskel/pyskel/internal/config"
	execx "github.com/pyskel/pyskel/internal/exec"
	"github.com/pyskel/pyskel/internal/input"
	"github.com/pyskel/pyskel/internal/output"
	"github.com/pyskel/pyskel/internal/project"
	"github.com/spf13/cobra"
)

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
	var (
		docs   bool
		git    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "new [project-name] [package-name]",
		Short: "Create a new Python project skeleton",
		Long: `Creates a new Python project skeleton with:
• Standard directory structure (config, files, notebooks, test, src)
• Boilerplate files (README, pyproject.toml, .gitignore, source stubs)
• Optional docs/ directory and git repository

The project name must be Train-Case (My-Project); the package name must
be snake_case (my_pkg). Both are normalized from the casing you type.
When the package name is omitted, you are prompted with a default
derived from the project name.

Example:
  pyskel new my-project my_pkg --doc`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			projectName := args[0]

			// Flags not set explicitly fall back to .pyskel.yml defaults.
			if HasDefaultsConfigured() {
				defaults, err := config.Load(".")
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				output.Debug("Applying defaults from " + config.FileName)
				if !cmd.Flags().Changed("doc") {
					docs = defaults.Scaffold.Docs
				}
				if !cmd.Flags().Changed("git") {
					git = defaults.Scaffold.Git
				}
			}

			packageName := ""
			if len(args) == 2 {
				packageName = args[1]
			} else {
				packageName = input.Prompt("Package name", defaultPackageName(projectName))
			}

			output.Debug(fmt.Sprintf("Creating new Python project: %s", projectName))

			scaffolder := project.NewScaffolder()
			root, err := scaffolder.Scaffold(cmd.Context(), projectName, packageName, project.Options{
				Docs:   docs,
				DryRun: dryRun,
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if dryRun {
				output.Info("Dry run: nothing was created")
				return
			}

			if git {
				initGitRepo(cmd, string(root))
			}

			output.Success(fmt.Sprintf("Created Python project: %s", root))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", root))
			output.Step("uv sync")
			output.Step("pytest")
		},
	}

	cmd.Flags().BoolVar(&docs, "doc", false, "Create a docs/ directory for package documentation")
	cmd.Flags().BoolVar(&git, "git", false, "Initialize a git repository in the new project")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the build plan without creating anything")

	return cmd
}

// defaultPackageName derives a snake_case suggestion from the project
// name (my-awesome-project -> my_awesome_project).
func defaultPackageName(projectName string) string {
	return strings.ReplaceAll(strings.ToLower(projectName), "-", "_")
}

// initGitRepo runs git init inside the freshly created project. A
// failure here is reported but does not undo the build: the skeleton is
// already complete and usable.
func initGitRepo(cmd *cobra.Command, root string) {
	cwd, err := os.Getwd()
	if err != nil {
		output.Error(fmt.Sprintf("git init skipped: %v", err))
		return
	}

	executor := execx.NewExecutor(&execx.Options{Dir: filepath.Join(cwd, root)})
	if err := executor.RunWithSpinner(cmd.Context(), "Initializing git repository", "git", "init"); err != nil {
		output.Error(fmt.Sprintf("git init failed: %v", err))
		return
	}
	output.Debug("Initialized git repository")
}
