package tools

import (
	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

// newIncludeWhatYouUse wraps include-what-you-use, whose exit code is
// 2 + the number of violations. Subtracting 2 maps a clean run to 0.
func newIncludeWhatYouUse(cfg *config.Config, deps *hook.Dependencies) Hook {
	a := hook.NewAnalyzer("include-what-you-use", Lookbehinds["include-what-you-use"], deps)
	a.PostRun = func(r *hook.Result) {
		r.ExitCode -= 2
		if r.ExitCode < 0 {
			r.ExitCode = 0
		}
	}
	a.Defaults = configDefaults(cfg, "include-what-you-use")
	a.Timeout = timeout(cfg)
	return a
}
