// Package main implements the cppcheck pre-commit hook.
package main

import (
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

func main() {
	os.Exit(tools.Run("cppcheck", os.Args[1:]))
}
