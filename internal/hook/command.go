// Package hook implements the shim logic shared by all pre-commit hook
// binaries: argument splitting, default-argument injection, version
// assertion, and subprocess execution with the wrapped tool's verdict
// surfaced as the process exit code.
package hook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/localuser2/pre-commit-hooks/internal/shared"
)

// ErrNotInstalled is returned when the wrapped binary is not on PATH.
var ErrNotInstalled = errors.New("command not found")

// DefaultTimeout bounds a single wrapped-tool invocation.
const DefaultTimeout = 60 * time.Second

// Shim is the common core of every hook: it knows which binary it wraps,
// how to split argv into files and pass-through flags, and how to report
// the wrapped tool's verdict.
type Shim struct {
	// Tool is the name of the wrapped binary, resolved via PATH.
	Tool string
	// Lookbehind is the text preceding the version number in the tool's
	// `--version` output.
	Lookbehind string

	Flags []string
	Files []string

	// Defaults are flag groups injected after parsing unless the user
	// already passed the group's leading flag.
	Defaults [][]string

	Timeout time.Duration
	Deps    *Dependencies

	expectedVersion string
	output          bytes.Buffer
}

// ParseArgs splits argv into target files and pass-through flags. An
// argument naming an existing regular file is a target; `--version=X`
// is consumed as a version assertion; everything else is forwarded to
// the wrapped tool unmodified and in order.
func (s *Shim) ParseArgs(argv []string) {
	for _, arg := range argv {
		if version, ok := strings.CutPrefix(arg, "--version="); ok {
			s.expectedVersion = version
			continue
		}
		if info, err := s.Deps.FS.Stat(arg); err == nil && info.Mode().IsRegular() {
			s.Files = append(s.Files, arg)
			continue
		}
		s.Flags = append(s.Flags, arg)
	}
	for _, group := range s.Defaults {
		s.AddIfMissing(group...)
	}
}

// AddIfMissing appends a group of default flags unless a flag with the same
// name as the group's first token was already passed. Flag names compare up
// to any `=`, so --error-exitcode=2 suppresses the --error-exitcode=1
// default.
func (s *Shim) AddIfMissing(group ...string) {
	if len(group) == 0 {
		return
	}
	key := flagName(group[0])
	for _, flag := range s.Flags {
		if flagName(flag) == key {
			return
		}
	}
	s.Flags = append(s.Flags, group...)
}

func flagName(flag string) string {
	if i := strings.IndexByte(flag, '='); i >= 0 {
		return flag[:i]
	}
	return flag
}

// CheckInstalled verifies the wrapped binary can be resolved via PATH.
func (s *Shim) CheckInstalled() error {
	if _, err := s.Deps.Runner.LookPath(s.Tool); err != nil {
		return fmt.Errorf("%w: %s (is it installed?)", ErrNotInstalled, s.Tool)
	}
	return nil
}

// AssertVersion enforces a `--version=X` assertion against the wrapped
// tool's actual version. A no-op when no assertion was passed.
func (s *Shim) AssertVersion(ctx context.Context) error {
	if s.expectedVersion == "" {
		return nil
	}
	out, err := s.runTool(ctx, "--version")
	if err != nil {
		return fmt.Errorf("get %s version: %w", s.Tool, err)
	}
	actual := ExtractVersion(string(out.Stdout)+string(out.Stderr), s.Lookbehind)
	if actual == "" {
		return fmt.Errorf("could not parse version from %s --version output", s.Tool)
	}
	if !VersionMatches(s.expectedVersion, actual) {
		return fmt.Errorf("version of %s is wrong: expected %s, found %s",
			s.Tool, s.expectedVersion, actual)
	}
	return nil
}

// runTool runs the wrapped binary once with the invocation timeout applied.
func (s *Shim) runTool(ctx context.Context, args ...string) (*CommandOutput, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := s.Deps.Runner.RunContext(ctx, s.Tool, args...)
	if ctx.Err() == context.DeadlineExceeded {
		return out, fmt.Errorf("%s timed out after %v", s.Tool, timeout)
	}
	return out, err
}

// record accumulates a tool invocation's output for later surfacing.
func (s *Shim) record(out *CommandOutput) {
	if out == nil {
		return
	}
	s.output.Write(out.Stdout)
	s.output.Write(out.Stderr)
}

// Output returns everything the wrapped tool has produced so far.
func (s *Shim) Output() []byte {
	return s.output.Bytes()
}

// fail surfaces a problem and the wrapped tool's diagnostics on stderr and
// returns the exit code the hook process should use.
func (s *Shim) fail(code int, problem string, details []byte) int {
	_, _ = fmt.Fprintln(s.Deps.Stderr,
		shared.ErrorStyle.Render(fmt.Sprintf("Problem with %s: %s", s.Tool, problem)))
	if len(details) > 0 {
		_, _ = s.Deps.Stderr.Write(details)
		if details[len(details)-1] != '\n' {
			_, _ = fmt.Fprintln(s.Deps.Stderr)
		}
	}
	if code == 0 {
		code = 1
	}
	return code
}
