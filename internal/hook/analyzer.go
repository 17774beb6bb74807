package hook

import (
	"context"
	"fmt"
	"os"
)

// Result is the mutable per-invocation state a tool's PostRun hook may
// rewrite before the shim decides pass/fail.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Analyzer wraps a static analysis tool. It invokes the tool once per
// target file and fails the hook as soon as an invocation reports issues.
type Analyzer struct {
	Shim

	// PostRun lets a tool massage the captured output and exit code after
	// each invocation: clang-tidy strips warning-count noise, oclint
	// derives the verdict from its summary line, include-what-you-use
	// normalizes its unusual exit codes.
	PostRun func(r *Result)

	// EchoWorkdir prints the working directory before the first invocation.
	EchoWorkdir bool

	// CleanupScratch removes files the tool drops into the working
	// directory during analysis.
	CleanupScratch bool
}

// NewAnalyzer creates an analyzer shim for the named tool.
func NewAnalyzer(tool, lookbehind string, deps *Dependencies) *Analyzer {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	return &Analyzer{
		Shim: Shim{Tool: tool, Lookbehind: lookbehind, Deps: deps},
	}
}

// Run executes the analyzer over argv and returns the hook's exit code.
func (a *Analyzer) Run(ctx context.Context, argv []string) int {
	a.ParseArgs(argv)

	if err := a.CheckInstalled(); err != nil {
		return a.fail(1, err.Error(), nil)
	}
	if err := a.AssertVersion(ctx); err != nil {
		return a.fail(1, err.Error(), nil)
	}

	if a.EchoWorkdir {
		if cwd, err := os.Getwd(); err == nil {
			_, _ = fmt.Fprintf(a.Deps.Stdout, "Running in directory: %s\n", cwd)
		}
	}

	var before []string
	if a.CleanupScratch {
		before, _ = a.Deps.FS.ReadDirNames(".")
	}

	for _, file := range a.Files {
		out, err := a.runTool(ctx, append([]string{file}, a.Flags...)...)
		if err != nil {
			a.record(out)
			return a.fail(1, err.Error(), a.Output())
		}

		result := &Result{Stdout: out.Stdout, Stderr: out.Stderr, ExitCode: out.ExitCode}
		if a.PostRun != nil {
			a.PostRun(result)
		}
		a.record(&CommandOutput{Stdout: result.Stdout, Stderr: result.Stderr})

		if result.ExitCode != 0 {
			a.cleanupScratch(before)
			return a.fail(result.ExitCode, "tool reported issues", a.Output())
		}
	}

	a.cleanupScratch(before)
	return 0
}

// cleanupScratch removes working-directory files created since the snapshot.
func (a *Analyzer) cleanupScratch(before []string) {
	if !a.CleanupScratch {
		return
	}
	after, err := a.Deps.FS.ReadDirNames(".")
	if err != nil {
		return
	}
	known := make(map[string]bool, len(before))
	for _, name := range before {
		known[name] = true
	}
	for _, name := range after {
		if !known[name] {
			_ = a.Deps.FS.Remove(name)
		}
	}
}
