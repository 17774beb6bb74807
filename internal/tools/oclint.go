package tools

import (
	"bytes"

	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

var (
	noViolations   = []byte("FilesWithViolations=0")
	compilerErrors = []byte("Compiler Errors:")
)

// newOCLint wraps oclint, whose exit code does not reliably track its
// findings (oclint/oclint#538). The verdict comes from the report summary
// instead, and the plist scratch files it drops are cleaned up.
func newOCLint(cfg *config.Config, deps *hook.Dependencies) Hook {
	a := hook.NewAnalyzer("oclint", Lookbehinds["oclint"], deps)
	a.CleanupScratch = true
	a.PostRun = func(r *hook.Result) {
		if !bytes.Contains(r.Stdout, noViolations) || bytes.Contains(r.Stdout, compilerErrors) {
			r.ExitCode = 1
		} else {
			r.ExitCode = 0
		}
	}
	a.Defaults = configDefaults(cfg, "oclint")
	a.Timeout = timeout(cfg)
	return a
}
