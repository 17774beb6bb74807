// Package main implements the include-what-you-use pre-commit hook.
package main

import (
	"os"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

func main() {
	os.Exit(tools.Run("include-what-you-use", os.Args[1:]))
}
