package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/docfmt/pkg/docstring"
)

func newClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <keyword>...",
		Short: "Show which fragment kinds a section keyword maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

// runClassify resolves each keyword against the classification tables and
// prints one line per matching family. Ambiguous keywords such as "note"
// print one line per reading.
func runClassify(w io.Writer, keywords []string) error {
	for _, keyword := range keywords {
		matches := docstring.Classify(strings.ToLower(keyword))
		if len(matches) == 0 {
			fmt.Fprintf(w, "%s: no match\n", keyword)
			continue
		}
		for _, family := range matches {
			if family.Generator() {
				fmt.Fprintf(w, "%s: %s -> %s (generator)\n", keyword, family, family.Kind())
			} else {
				fmt.Fprintf(w, "%s: %s -> %s\n", keyword, family, family.Kind())
			}
		}
	}
	return nil
}
