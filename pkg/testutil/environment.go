package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/filesystem"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is an isolated pair of input and output roots.
type TestEnvironment struct {
	Root       string
	InputRoot  string
	OutputRoot string
	FS         types.FS

	t *testing.T
}

// NewTestEnvironment creates input and output directories under t.TempDir().
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		InputRoot:  filepath.Join(root, "input"),
		OutputRoot: filepath.Join(root, "output"),
		FS:         filesystem.NewOS(),
		t:          t,
	}
	require.NoError(t, os.MkdirAll(env.InputRoot, 0755))
	require.NoError(t, os.MkdirAll(env.OutputRoot, 0755))
	return env
}

// Input joins parts onto the input root.
func (e *TestEnvironment) Input(parts ...string) string {
	return filepath.Join(append([]string{e.InputRoot}, parts...)...)
}

// Output joins parts onto the output root.
func (e *TestEnvironment) Output(parts ...string) string {
	return filepath.Join(append([]string{e.OutputRoot}, parts...)...)
}

// WriteFile creates a regular file below the input root.
func (e *TestEnvironment) WriteFile(rel string, content []byte) string {
	e.t.Helper()
	path := e.Input(rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, content, 0644))
	return path
}

// Mkdir creates a directory below the input root.
func (e *TestEnvironment) Mkdir(rel string) string {
	e.t.Helper()
	path := e.Input(rel)
	require.NoError(e.t, os.MkdirAll(path, 0755))
	return path
}

// Symlink creates a symlink below the input root pointing at target.
func (e *TestEnvironment) Symlink(rel, target string) string {
	e.t.Helper()
	path := e.Input(rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.Symlink(target, path))
	return path
}
