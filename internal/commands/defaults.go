package commands

import (
	"fmt"
	"os"

	"github.com/pyskel/pyskel/internal/config"
	"github.com/pyskel/pyskel/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultsCmd creates and returns the 'defaults' command group for
// managing the .pyskel.yml defaults file.
func DefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Manage pyskel defaults (.pyskel.yml)",
	}

	cmd.AddCommand(defaultsInitCmd())
	cmd.AddCommand(defaultsShowCmd())

	return cmd
}

func defaultsInitCmd() *cobra.Command {
	var (
		docs bool
		git  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a defaults file in the current directory",
		Run: func(cmd *cobra.Command, args []string) {
			if config.Exists(".") {
				output.Error(config.FileName + " already exists")
				os.Exit(1)
			}

			defaults := &config.Defaults{
				Scaffold: config.ScaffoldDefaults{Docs: docs, Git: git},
			}
			if err := config.Write(".", defaults); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success("Created " + config.FileName)
		},
	}

	cmd.Flags().BoolVar(&docs, "doc", false, "Default the docs/ directory to on")
	cmd.Flags().BoolVar(&git, "git", false, "Default git initialization to on")

	return cmd
}

func defaultsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective scaffold defaults",
		Run: func(cmd *cobra.Command, args []string) {
			if !HasDefaultsConfigured() {
				output.Info("No " + config.FileName + " found; built-in defaults shown")
			}

			defaults, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			data, err := yaml.Marshal(defaults)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			fmt.Print(string(data))
		},
	}
}
