// Package main provides the careguide command line.
package main

import (
	"fmt"
	"os"

	"github.com/senior-care-guide/internal/cli"
)

var version = "1.0.0"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
