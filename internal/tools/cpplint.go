package tools

import (
	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

// newCpplint wraps cpplint. No quirks; diagnostics arrive on stderr and the
// exit code is already hook-shaped.
func newCpplint(cfg *config.Config, deps *hook.Dependencies) Hook {
	a := hook.NewAnalyzer("cpplint", Lookbehinds["cpplint"], deps)
	a.Defaults = configDefaults(cfg, "cpplint")
	a.Timeout = timeout(cfg)
	return a
}
