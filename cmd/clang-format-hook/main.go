// Package main implements the clang-format pre-commit hook.
package main

import (
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

func main() {
	os.Exit(tools.Run("clang-format", os.Args[1:]))
}
