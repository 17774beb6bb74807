// Package main implements the clang-tidy pre-commit hook.
package main

import (
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

func main() {
	os.Exit(tools.Run("clang-tidy", os.Args[1:]))
}
