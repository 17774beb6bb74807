package hook

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
)

// Formatter wraps a formatting tool. It runs the tool in capture mode,
// compares the formatted output to the file on disk, and fails the hook
// when they differ, printing a unified diff unless --no-diff was passed.
// In-place mode rewrites the file from the captured output; a rewritten
// file still fails the hook so the commit is retried with the fix staged.
type Formatter struct {
	Shim

	// InPlaceFlags are the wrapped tool's own rewrite flags. They are
	// consumed by the shim: stripped from the capture invocation, with the
	// shim writing the formatted bytes back itself.
	InPlaceFlags []string

	// FileArgs places the target file in the capture invocation. Defaults
	// to appending the path as the final argument.
	FileArgs func(file string) []string

	noDiff  bool
	inPlace bool
}

// NewFormatter creates a formatter shim for the named tool.
func NewFormatter(tool, lookbehind string, deps *Dependencies) *Formatter {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &Formatter{
		Shim: Shim{Tool: tool, Lookbehind: lookbehind, Deps: deps},
	}
}

// Run executes the formatter over argv and returns the hook's exit code.
func (f *Formatter) Run(ctx context.Context, argv []string) int {
	f.ParseArgs(f.consumeNoDiff(argv))
	f.splitInPlaceFlags()

	if err := f.CheckInstalled(); err != nil {
		return f.fail(1, err.Error(), nil)
	}
	if err := f.AssertVersion(ctx); err != nil {
		return f.fail(1, err.Error(), nil)
	}

	exitCode := 0
	for _, file := range f.Files {
		code, err := f.formatOne(ctx, file)
		if err != nil {
			return f.fail(1, err.Error(), f.Output())
		}
		if code != 0 {
			exitCode = code
		}
	}
	return exitCode
}

// formatOne captures the formatted text for one file and diffs it against
// the file's current contents. Returns 1 when they differ.
func (f *Formatter) formatOne(ctx context.Context, file string) (int, error) {
	info, err := f.Deps.FS.Stat(file)
	if err != nil {
		return 0, err
	}
	actual, err := f.Deps.FS.ReadFile(file)
	if err != nil {
		return 0, err
	}

	args := append(slices.Clone(f.Flags), f.fileArgs(file)...)
	out, err := f.runTool(ctx, args...)
	if err != nil {
		f.record(out)
		return 0, err
	}
	if out.ExitCode != 0 || len(out.Stderr) > 0 {
		f.record(out)
		return 0, fmt.Errorf("unexpected stderr or exit code %d when formatting %s",
			out.ExitCode, file)
	}

	formatted := out.Stdout
	if bytes.Equal(formatted, actual) {
		return 0, nil
	}

	if !f.noDiff {
		f.printDiff(file, actual, formatted)
	}
	if f.inPlace {
		if err := f.Deps.FS.WriteFile(file, formatted, info.Mode().Perm()); err != nil {
			return 0, err
		}
	}
	return 1, nil
}

// consumeNoDiff strips the shim-only --no-diff flag before generic parsing.
func (f *Formatter) consumeNoDiff(argv []string) []string {
	kept := argv[:0:0]
	for _, arg := range argv {
		if arg == "--no-diff" {
			f.noDiff = true
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}

// splitInPlaceFlags removes the tool's rewrite flags from the capture
// invocation and notes that the shim should write files itself.
func (f *Formatter) splitInPlaceFlags() {
	if len(f.InPlaceFlags) == 0 {
		return
	}
	kept := f.Flags[:0:0]
	for _, flag := range f.Flags {
		if slices.Contains(f.InPlaceFlags, flag) {
			f.inPlace = true
			continue
		}
		kept = append(kept, flag)
	}
	f.Flags = kept
}

func (f *Formatter) fileArgs(file string) []string {
	if f.FileArgs != nil {
		return f.FileArgs(file)
	}
	return []string{file}
}

func (f *Formatter) printDiff(file string, actual, formatted []byte) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(actual)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: "original",
		ToFile:   "formatted",
		Context:  3,
	})
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(f.Deps.Stdout, "%s\n====================\n%s", file, diff)
}
