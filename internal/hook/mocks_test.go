package hook

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"time"
)

// fakeFileInfo is a minimal os.FileInfo for mock Stat results.
type fakeFileInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() any           { return nil }

type mockFileSystem struct {
	files        map[string][]byte
	writes       map[string][]byte
	removed      []string
	readDirFunc  func(dir string) ([]string, error)
	writeErrFunc func(name string) error
}

func newMockFileSystem(files map[string][]byte) *mockFileSystem {
	return &mockFileSystem{
		files:  files,
		writes: make(map[string][]byte),
	}
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	if _, ok := m.files[name]; ok {
		return fakeFileInfo{name: name, mode: 0o644}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *mockFileSystem) ReadFile(name string) ([]byte, error) {
	if data, ok := m.files[name]; ok {
		return data, nil
	}
	return nil, fs.ErrNotExist
}

func (m *mockFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	if m.writeErrFunc != nil {
		if err := m.writeErrFunc(name); err != nil {
			return err
		}
	}
	m.writes[name] = data
	return nil
}

func (m *mockFileSystem) Remove(name string) error {
	m.removed = append(m.removed, name)
	return nil
}

func (m *mockFileSystem) ReadDirNames(dir string) ([]string, error) {
	if m.readDirFunc != nil {
		return m.readDirFunc(dir)
	}
	return nil, nil
}

type mockCommandRunner struct {
	runFunc      func(ctx context.Context, name string, args ...string) (*CommandOutput, error)
	lookPathFunc func(file string) (string, error)
	calls        [][]string
}

func (m *mockCommandRunner) RunContext(ctx context.Context, name string, args ...string) (*CommandOutput, error) {
	m.calls = append(m.calls, append([]string{name}, args...))
	if m.runFunc != nil {
		return m.runFunc(ctx, name, args...)
	}
	return &CommandOutput{}, nil
}

func (m *mockCommandRunner) LookPath(file string) (string, error) {
	if m.lookPathFunc != nil {
		return m.lookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// newTestDeps wires mocks into a Dependencies plus capture buffers.
func newTestDeps(fs FileSystem, runner CommandRunner) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	if fs == nil {
		fs = newMockFileSystem(nil)
	}
	if runner == nil {
		runner = &mockCommandRunner{}
	}
	return &Dependencies{
		FS:     fs,
		Runner: runner,
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}
