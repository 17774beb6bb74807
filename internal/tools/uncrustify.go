package tools

import (
	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

// newUncrustify wraps uncrustify. With -f the tool reads one file and
// prints the formatted result to stdout; --replace/--no-backup are consumed
// so the shim controls the rewrite.
func newUncrustify(cfg *config.Config, deps *hook.Dependencies) Hook {
	f := hook.NewFormatter("uncrustify", Lookbehinds["uncrustify"], deps)
	f.InPlaceFlags = []string{"--replace", "--no-backup"}
	f.FileArgs = func(file string) []string { return []string{"-f", file} }
	f.Defaults = configDefaults(cfg, "uncrustify")
	f.Timeout = timeout(cfg)
	return f
}
