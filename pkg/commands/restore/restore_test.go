package restore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/commands/backup"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	raw := string([]byte{'/', 'x', 0xff, 'y', 0xfe})

	env.Symlink("link", "/etc/passwd")
	env.Mkdir("sub")
	env.Symlink("sub/raw", raw)
	env.WriteFile("plain", []byte("not preserved"))

	_, err := backup.Backup(backup.BackupOptions{
		InputPath:  env.InputRoot,
		OutputPath: env.OutputRoot,
		FileSystem: env.FS,
	})
	require.NoError(t, err)

	restored := filepath.Join(env.Root, "restored")
	require.NoError(t, os.Mkdir(restored, 0755))

	result, err := Restore(RestoreOptions{
		InputPath:  env.OutputRoot,
		OutputPath: restored,
		FileSystem: env.FS,
	})
	require.NoError(t, err)

	testutil.AssertDir(t, filepath.Join(restored, "sub"))
	testutil.AssertSymlink(t, filepath.Join(restored, "link"), "/etc/passwd")
	testutil.AssertSymlink(t, filepath.Join(restored, "sub", "raw"), raw)
	testutil.AssertNotExists(t, filepath.Join(restored, "plain"))

	assert.Equal(t, 2, result.Symlinks)
	assert.Equal(t, 2, result.Directories)
}

func TestRestoreIgnoresOtherFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFile("readme.md", []byte("/etc/passwd\n"))
	env.WriteFile("a.lns", []byte("/etc/hosts\n"))

	result, err := Restore(RestoreOptions{
		InputPath:  env.InputRoot,
		OutputPath: env.OutputRoot,
		FileSystem: env.FS,
	})
	require.NoError(t, err)

	testutil.AssertSymlink(t, env.Output("a"), "/etc/hosts")
	testutil.AssertNotExists(t, env.Output("readme.md"))
	testutil.AssertNotExists(t, env.Output("readme"))
	assert.Equal(t, 1, result.Symlinks)
	assert.Equal(t, 1, result.Skipped)
}

func TestRestoreMissingOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFile("a.lns", []byte("/etc/hosts\n"))

	_, err := Restore(RestoreOptions{
		InputPath:  env.InputRoot,
		OutputPath: filepath.Join(env.Root, "absent"),
		FileSystem: env.FS,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))
	testutil.AssertNotExists(t, filepath.Join(env.Root, "absent"))
}

func TestRestoreRejectsOutputInsideInput(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFile("link.lns", []byte("/etc/passwd\n"))
	nested := env.Mkdir("restored")

	_, err := Restore(RestoreOptions{
		InputPath:  env.InputRoot,
		OutputPath: nested,
		FileSystem: env.FS,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	testutil.AssertNotExists(t, filepath.Join(nested, "link"))
}
