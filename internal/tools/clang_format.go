package tools

import (
	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

// newClangFormat wraps clang-format. The tool prints the formatted file to
// stdout; -i is consumed so the shim can diff before rewriting.
func newClangFormat(cfg *config.Config, deps *hook.Dependencies) Hook {
	f := hook.NewFormatter("clang-format", Lookbehinds["clang-format"], deps)
	f.InPlaceFlags = []string{"-i"}
	f.Defaults = configDefaults(cfg, "clang-format")
	f.Timeout = timeout(cfg)
	return f
}
