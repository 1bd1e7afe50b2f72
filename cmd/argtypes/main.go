// Package main is the entry point for the argtypes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/argtypes/cmd/argtypes/commands"
	"github.com/thoreinstein/argtypes/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
