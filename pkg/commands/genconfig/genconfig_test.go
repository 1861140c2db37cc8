package genconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfigStdout(t *testing.T) {
	result, err := GenConfig(GenConfigOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.FileWritten)
	assert.Contains(t, result.Content, "mime_info_db:")
	assert.Contains(t, result.Content, "used_for:")
	assert.Contains(t, result.Content, "- application/zip")
}

func TestGenConfigWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")
	cfg := config.Default()
	cfg.Libmagic.DBFile = "/opt/magic.mgc"

	result, err := GenConfig(GenConfigOptions{Config: cfg, WritePath: path})
	require.NoError(t, err)
	assert.Equal(t, path, result.FileWritten)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/magic.mgc", loaded.Libmagic.DBFile)

	_, err = GenConfig(GenConfigOptions{WritePath: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.Content, string(data))
}
