// Package tools defines the seven wrapped C/C++ linters and formatters and
// the registry the hook binaries dispatch through.
package tools

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
	"github.com/localuser2/pre-commit-hooks/internal/shared"
)

// Hook is a configured shim ready to run against argv.
type Hook interface {
	Run(ctx context.Context, argv []string) int
}

// Builder constructs a tool's shim from configuration and dependencies.
type Builder func(cfg *config.Config, deps *hook.Dependencies) Hook

// Lookbehinds maps tool names to the text preceding the version number in
// each tool's --version output.
var Lookbehinds = map[string]string{
	"clang-format":         "clang-format version ",
	"clang-tidy":           "LLVM version ",
	"cppcheck":             "Cppcheck ",
	"cpplint":              "cpplint ",
	"include-what-you-use": "include-what-you-use ",
	"oclint":               "OCLint version ",
	"uncrustify":           "Uncrustify-",
}

var registry = map[string]Builder{
	"clang-format":         newClangFormat,
	"clang-tidy":           newClangTidy,
	"cppcheck":             newCppcheck,
	"cpplint":              newCpplint,
	"include-what-you-use": newIncludeWhatYouUse,
	"oclint":               newOCLint,
	"uncrustify":           newUncrustify,
}

// Names returns the registered tool names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder for a tool name.
func Lookup(name string) (Builder, bool) {
	builder, ok := registry[name]
	return builder, ok
}

// Run is the entry point shared by every hook binary: load configuration,
// build the named tool's shim, and run it against argv.
func Run(name string, argv []string) int {
	cfg, _ := config.Load()
	if cfg != nil && !cfg.Color {
		shared.DisableColors()
	}

	builder, ok := registry[name]
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "unknown tool: %s\n", name)
		return 1
	}

	h := builder(cfg, hook.NewDefaultDependencies())
	return h.Run(context.Background(), argv)
}

// timeout converts the configured timeout into a duration.
func timeout(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.TimeoutSeconds > 0 {
		return time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return hook.DefaultTimeout
}

// configDefaults turns per-tool configured args into default flag groups.
func configDefaults(cfg *config.Config, tool string) [][]string {
	args := cfg.ToolArgs(tool)
	groups := make([][]string, 0, len(args))
	for _, arg := range args {
		groups = append(groups, []string{arg})
	}
	return groups
}
