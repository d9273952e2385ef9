package main

import (
	"os"

	"github.com/pyskel/pyskel/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.DefaultsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
