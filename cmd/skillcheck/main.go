// Package main is the entry point for the skillcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tmorrison/skillcheck/cmd/skillcheck/commands"
	"github.com/tmorrison/skillcheck/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Validation failure is already reported in full; the error
		// only carries the exit status.
		if errors.Is(err, errors.ErrValidationFailed) {
			os.Exit(errors.ExitUser)
		}
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
			}
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(errors.ExitUser)
	}
}
