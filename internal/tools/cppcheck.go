package tools

import (
	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

// newCppcheck wraps cppcheck. Defaults make it behave as a pre-commit hook:
// quiet, non-zero exit on findings, and the noisy suppression classes off.
func newCppcheck(cfg *config.Config, deps *hook.Dependencies) Hook {
	a := hook.NewAnalyzer("cppcheck", Lookbehinds["cppcheck"], deps)
	a.EchoWorkdir = true
	a.Defaults = [][]string{
		{"-q"},
		{"--error-exitcode=1"},
		{"--suppress=unmatchedSuppression", "--suppress=missingIncludeSystem", "--suppress=unusedFunction"},
	}
	a.Defaults = append(a.Defaults, configDefaults(cfg, "cppcheck")...)
	a.Timeout = timeout(cfg)
	return a
}
