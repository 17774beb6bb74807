package tools

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localuser2/pre-commit-hooks/internal/config"
	"github.com/localuser2/pre-commit-hooks/internal/hook"
)

type fakeFileInfo struct{ name string }

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

type fakeFS struct {
	files map[string][]byte
}

func (f *fakeFS) Stat(name string) (os.FileInfo, error) {
	if _, ok := f.files[name]; ok {
		return fakeFileInfo{name: name}, nil
	}
	return nil, fs.ErrNotExist
}

func (f *fakeFS) ReadFile(name string) ([]byte, error) {
	if data, ok := f.files[name]; ok {
		return data, nil
	}
	return nil, fs.ErrNotExist
}

func (f *fakeFS) WriteFile(name string, data []byte, _ os.FileMode) error {
	f.files[name] = data
	return nil
}

func (f *fakeFS) Remove(string) error { return nil }

func (f *fakeFS) ReadDirNames(string) ([]string, error) { return nil, nil }

type fakeRunner struct {
	output *hook.CommandOutput
	calls  [][]string
}

func (f *fakeRunner) RunContext(_ context.Context, name string, args ...string) (*hook.CommandOutput, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.output != nil {
		return f.output, nil
	}
	return &hook.CommandOutput{}, nil
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	return "/usr/bin/" + file, nil
}

func testDeps(files map[string][]byte, runner *fakeRunner) *hook.Dependencies {
	return &hook.Dependencies{
		FS:     &fakeFS{files: files},
		Runner: runner,
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	require.Len(t, names, 7)
	assert.Equal(t, []string{
		"clang-format", "clang-tidy", "cppcheck", "cpplint",
		"include-what-you-use", "oclint", "uncrustify",
	}, names)

	for _, name := range names {
		builder, ok := Lookup(name)
		require.True(t, ok, name)
		require.NotNil(t, builder(nil, testDeps(nil, &fakeRunner{})), name)
		assert.NotEmpty(t, Lookbehinds[name], name)
	}
}

func TestCppcheckDefaults(t *testing.T) {
	t.Run("defaults injected", func(t *testing.T) {
		runner := &fakeRunner{}
		h := newCppcheck(nil, testDeps(map[string][]byte{"a.c": nil}, runner))

		code := h.Run(context.Background(), []string{"a.c"})
		require.Equal(t, 0, code)
		require.Len(t, runner.calls, 1)

		call := runner.calls[0]
		assert.Equal(t, "cppcheck", call[0])
		assert.Equal(t, "a.c", call[1])
		assert.Contains(t, call, "-q")
		assert.Contains(t, call, "--error-exitcode=1")
		assert.Contains(t, call, "--suppress=missingIncludeSystem")
	})

	t.Run("user flags win", func(t *testing.T) {
		runner := &fakeRunner{}
		h := newCppcheck(nil, testDeps(map[string][]byte{"a.c": nil}, runner))

		h.Run(context.Background(), []string{"a.c", "--error-exitcode=2"})
		require.Len(t, runner.calls, 1)
		assert.Contains(t, runner.calls[0], "--error-exitcode=2")
		assert.NotContains(t, runner.calls[0], "--error-exitcode=1")
	})

	t.Run("configured args are injected", func(t *testing.T) {
		cfg := &config.Config{
			Tools: map[string]config.ToolConfig{
				"cppcheck": {Args: []string{"--std=c++17"}},
			},
		}
		runner := &fakeRunner{}
		h := newCppcheck(cfg, testDeps(map[string][]byte{"a.c": nil}, runner))

		h.Run(context.Background(), []string{"a.c"})
		require.Len(t, runner.calls, 1)
		assert.Contains(t, runner.calls[0], "--std=c++17")
	})
}

func TestIncludeWhatYouUseExitCodes(t *testing.T) {
	tests := []struct {
		toolExit int
		want     int
	}{
		{2, 0}, // clean run
		{3, 1},
		{5, 3},
		{0, 0},
	}

	for _, tt := range tests {
		runner := &fakeRunner{output: &hook.CommandOutput{ExitCode: tt.toolExit}}
		h := newIncludeWhatYouUse(nil, testDeps(map[string][]byte{"a.c": nil}, runner))

		code := h.Run(context.Background(), []string{"a.c"})
		assert.Equal(t, tt.want, code, "tool exit %d", tt.toolExit)
	}
}

func TestOCLintVerdictFromSummary(t *testing.T) {
	t.Run("violations fail despite zero exit", func(t *testing.T) {
		runner := &fakeRunner{output: &hook.CommandOutput{
			Stdout: []byte("Summary: TotalFiles=1 FilesWithViolations=1 P1=0 P2=1 P3=0\n"),
		}}
		h := newOCLint(nil, testDeps(map[string][]byte{"a.c": nil}, runner))

		assert.Equal(t, 1, h.Run(context.Background(), []string{"a.c"}))
	})

	t.Run("clean summary passes despite non-zero exit", func(t *testing.T) {
		runner := &fakeRunner{output: &hook.CommandOutput{
			Stdout:   []byte("Summary: TotalFiles=1 FilesWithViolations=0 P1=0 P2=0 P3=0\n"),
			ExitCode: 5,
		}}
		h := newOCLint(nil, testDeps(map[string][]byte{"a.c": nil}, runner))

		assert.Equal(t, 0, h.Run(context.Background(), []string{"a.c"}))
	})

	t.Run("compiler errors fail", func(t *testing.T) {
		runner := &fakeRunner{output: &hook.CommandOutput{
			Stdout: []byte("Compiler Errors:\n(please be aware that these errors will prevent OCLint from analyzing)\nSummary: TotalFiles=0 FilesWithViolations=0\n"),
		}}
		h := newOCLint(nil, testDeps(map[string][]byte{"a.c": nil}, runner))

		assert.Equal(t, 1, h.Run(context.Background(), []string{"a.c"}))
	})
}

func TestClangTidyStripsWarningNoise(t *testing.T) {
	runner := &fakeRunner{output: &hook.CommandOutput{
		Stderr: []byte("1,284 warnings generated.\n"),
	}}
	deps := testDeps(map[string][]byte{"a.c": nil}, runner)
	h := newClangTidy(nil, deps)

	code := h.Run(context.Background(), []string{"a.c", "-quiet"})
	require.Equal(t, 0, code)

	stderr := deps.Stderr.(*bytes.Buffer)
	assert.Empty(t, stderr.String())
}
