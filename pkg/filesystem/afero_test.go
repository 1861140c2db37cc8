package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	f, err := fs.Open(testFile)
	require.NoError(t, err)
	streamed, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, testContent, streamed)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	_, err = fs.ReadFile(subDir)
	assert.Error(t, err)
}

func TestOSSymlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "link")

	require.NoError(t, fs.Symlink("/does/not/exist", link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "/does/not/exist", target)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	// Stat follows the dangling link
	_, err = fs.Stat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryHasNoSymlinks(t *testing.T) {
	fs := NewMemory()

	err := fs.Symlink("target", "/link")
	require.Error(t, err)
	assert.ErrorIs(t, err, afero.ErrNoSymlink)

	_, err = fs.Readlink("/link")
	assert.ErrorIs(t, err, afero.ErrNoReadlink)
}

func TestWalkVisitsParentsFirst(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/root/a/b", 0755))
	require.NoError(t, fs.WriteFile("/root/a/b/file", []byte("x"), 0644))

	var visited []string
	err := fs.Walk("/root", func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/root", "/root/a", "/root/a/b", "/root/a/b/file"}, visited)
}
