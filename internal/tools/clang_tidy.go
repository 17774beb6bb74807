package tools

import (
	"regexp"

	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

// clang-tidy reports how many warnings it generated on stderr even when
// they are all suppressed or expected; that count is noise for a hook.
var warningsGenerated = regexp.MustCompile(`[\d,]+ warnings? generated\.\n?`)

// newClangTidy wraps clang-tidy. Compiler args after -- pass through
// untouched; the warning-count chatter is stripped before the verdict.
func newClangTidy(cfg *config.Config, deps *hook.Dependencies) Hook {
	a := hook.NewAnalyzer("clang-tidy", Lookbehinds["clang-tidy"], deps)
	a.PostRun = func(r *hook.Result) {
		r.Stderr = warningsGenerated.ReplaceAll(r.Stderr, nil)
	}
	a.Defaults = configDefaults(cfg, "clang-tidy")
	a.Timeout = timeout(cfg)
	return a
}
