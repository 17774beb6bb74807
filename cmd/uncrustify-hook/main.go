// Package main implements the uncrustify pre-commit hook.
package main

import (
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

func main() {
	os.Exit(tools.Run("uncrustify", os.Args[1:]))
}
