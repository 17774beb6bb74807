package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/localuser2/pre-commit-hooks/internal/manifest"
	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

const defaultManifestPath = ".pre-commit-hooks.yaml"

// NewManifestCommand creates and returns the manifest subcommand
func NewManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Inspect or regenerate the .pre-commit-hooks.yaml manifest",
	}

	cmd.AddCommand(newManifestValidateCommand())
	cmd.AddCommand(newManifestGenerateCommand())

	return cmd
}

func newManifestValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a pre-commit hook manifest",
		Long: `Parse and validate a .pre-commit-hooks.yaml file, checking that every
hook has an id and entry, that entries name hook binaries this repository
ships, and that file patterns compile.

Exit code: 0 if valid, 1 if errors found`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultManifestPath
			if len(args) > 0 {
				path = args[0]
			}

			m, err := manifest.LoadFile(path)
			if err != nil {
				return err
			}
			if err := m.Validate(knownEntries()); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d hooks, all valid\n", path, len(m))
			return nil
		},
	}
}

func newManifestGenerateCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Emit the canonical manifest for the bundled hooks",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := manifest.Default()
			if outPath == "" {
				return m.Generate(cmd.OutOrStdout())
			}

			f, err := os.Create(outPath) // #nosec G304 - path comes from the CLI user
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer func() { _ = f.Close() }()
			return m.Generate(f)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the manifest to a file instead of stdout")
	return cmd
}

// knownEntries lists the hook binary names manifest entries may reference.
func knownEntries() []string {
	names := tools.Names()
	entries := make([]string, 0, len(names))
	for _, name := range names {
		entries = append(entries, name+"-hook")
	}
	return entries
}
