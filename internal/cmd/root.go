// Package cmd builds the cpp-hooks umbrella CLI.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ExitCodeError carries a wrapped tool's exit code through cobra's error
// path so main can surface it unchanged.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewRootCommand creates and returns the root cobra command for cpp-hooks
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpp-hooks",
		Short: "Pre-commit hooks for C/C++ linters and formatters",
		Long: `cpp-hooks bundles pre-commit hook shims for clang-format, clang-tidy,
cppcheck, cpplint, include-what-you-use, oclint, and uncrustify.

Each subcommand forwards files and flags to the wrapped tool and exits
non-zero when the tool reports issues, so a commit is blocked until the
findings are fixed.`,
		Version: Version,
		// Silence usage and cobra's own error echo; main reports errors once
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, name := range tools.Names() {
		cmd.AddCommand(newToolCommand(name))
	}
	cmd.AddCommand(NewManifestCommand())
	cmd.AddCommand(NewDoctorCommand())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cpp-hooks %s\n", Version)
		},
	})

	return cmd
}

// newToolCommand exposes one wrapped tool as a subcommand. Flag parsing is
// disabled so every argument reaches the shim verbatim.
func newToolCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:                name + " [files and flags...]",
		Short:              "Run the " + name + " hook",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := tools.Run(name, args); code != 0 {
				return &ExitCodeError{Code: code}
			}
			return nil
		},
	}
}
