package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that path is a symlink pointing exactly at target.
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected symlink at %s", path)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s is not a symlink", path)

	got, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, target, got, "symlink target of %s", path)
}

// AssertNotExists checks that nothing, not even a dangling link, exists at path.
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s not to exist", path)
}

// AssertDir checks that path is a directory.
func AssertDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected directory at %s", path)
	assert.True(t, info.IsDir(), "%s is not a directory", path)
}

// AssertFileContent checks a regular file's exact bytes.
func AssertFileContent(t *testing.T, path string, want []byte) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected file at %s", path)
	require.True(t, info.Mode().IsRegular(), "%s is not a regular file", path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
