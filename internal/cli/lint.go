package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/docfmt/internal/docio"
	"github.com/example/docfmt/pkg/docstring"
)

func newLintCommand() *cobra.Command {
	var config LintConfig

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check a docstring document against the producer contract",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunLint(&config)
		},
	}

	cmd.Flags().StringVar(&config.InputPath, "input", "-", "Path to input document or '-' for stdin")
	cmd.Flags().StringVar(&config.Format, "format", "json", "Document format: json or yaml")

	return cmd
}

// LintConfig holds configuration for document linting.
type LintConfig struct {
	InputPath string
	Format    string
}

// RunLint decodes a docstring document and reports contract violations such
// as a parameter without a name. It is silent on success.
func RunLint(config *LintConfig) error {
	format, err := docio.ParseFormat(config.Format)
	if err != nil {
		return err
	}

	doc, err := readDocument(config.InputPath, format)
	if err != nil {
		return err
	}

	if err := docstring.Validate(doc); err != nil {
		return fmt.Errorf("document violates the docstring contract:\n%w", err)
	}
	return nil
}
