package commands

import (
	"os"

	"github.com/pyskel/pyskel"
	"github.com/pyskel/pyskel/internal/config"
	"github.com/pyskel/pyskel/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RootCmd creates and returns the root command for the pyskel CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pyskel",
		Short: "Scaffold standardized Python project skeletons",
		Long: `Pyskel creates a ready-to-work Python project layout in one command:
• Standard directory structure (src layout, config, notebooks, tests)
• Boilerplate files (README, pyproject.toml, .gitignore, source stubs)
• Strict naming: Train-Case projects, snake_case packages
• Clean rollback if the build fails halfway

Example:
  pyskel new my-project my_pkg`,
		Version: pyskel.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// HasDefaultsConfigured checks if the working directory carries a
// readable .pyskel.yml defaults file.
func HasDefaultsConfigured() bool {
	data, err := os.ReadFile(config.FileName)
	if err != nil {
		// File doesn't exist or isn't readable
		return false
	}

	var d config.Defaults
	return yaml.Unmarshal(data, &d) == nil
}
