package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/localuser2/pre-commit-hooks/internal/hook"
	"github.com/localuser2/pre-commit-hooks/internal/output"
	"github.com/localuser2/pre-commit-hooks/internal/tools"
)

const versionProbeTimeout = 10 * time.Second

// NewDoctorCommand creates and returns the doctor subcommand
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "doctor",
		Short:        "Report which wrapped tools are installed and their versions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, hook.NewDefaultDependencies())
		},
	}
}

func runDoctor(cmd *cobra.Command, deps *hook.Dependencies) error {
	status := make(map[string]string)
	missing := 0

	for _, name := range tools.Names() {
		path, err := deps.Runner.LookPath(name)
		if err != nil {
			status[name] = "not installed"
			missing++
			continue
		}
		status[name] = probeVersion(cmd.Context(), deps, name, path)
	}

	renderer := output.NewListRenderer()
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderer.RenderMap("Wrapped tools", status))

	if missing > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d tools missing from PATH\n",
			missing, len(tools.Names()))
	}
	return nil
}

// probeVersion asks an installed tool for its version, falling back to the
// resolved path when the output cannot be parsed.
func probeVersion(ctx context.Context, deps *hook.Dependencies, name, path string) string {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := deps.Runner.RunContext(ctx, name, "--version")
	if err != nil || out.ExitCode != 0 {
		return path
	}
	if version := hook.ExtractVersion(string(out.Stdout)+string(out.Stderr), tools.Lookbehinds[name]); version != "" {
		return version
	}
	return path
}
