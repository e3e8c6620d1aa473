// Package cli provides the command-line interface for the docfmt tools.
package cli

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docfmt",
		Short: "Docstring document utilities",
	}

	rootCmd.AddCommand(newNormalizeCommand())
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newClassifyCommand())

	return rootCmd
}

// Execute creates and runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}
