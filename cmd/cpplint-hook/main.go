// Package main implements the cpplint pre-commit hook.
package main

import (
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

func main() {
	os.Exit(tools.Run("cpplint", os.Args[1:]))
}
