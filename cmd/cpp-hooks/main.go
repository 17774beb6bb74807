// Package main implements the cpp-hooks umbrella CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
