// Package main provides the CLI for the docfmt tools.
package main

import (
	"os"

	"github.com/example/docfmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
