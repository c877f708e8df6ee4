// Package main is the entry point for the draftbridge CLI.
package main

import (
	"os"

	"github.com/okampfer/draftbridge/cmd"
	"github.com/okampfer/draftbridge/internal/logging"
)

// main executes the root command and handles any errors that occur.
func main() {
	if err := cmd.Execute(); err != nil {
		logging.Debug("command execution failed", "error", err)
		os.Exit(1)
	}
}
