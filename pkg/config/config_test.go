package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.MimeInfoDB.Root)
	assert.Equal(t, paths.DefaultMagicDBFile, cfg.Libmagic.DBFile)
	assert.Equal(t, []string{"application/zip"}, cfg.Libmagic.UsedFor)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
mime_info_db:
  root: /opt/mime
libmagic:
  db_file: /opt/magic.mgc
  used_for:
    - application/zip
    - application/x-tar
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/mime", cfg.MimeInfoDB.Root)
	assert.Equal(t, "/opt/magic.mgc", cfg.Libmagic.DBFile)
	assert.Equal(t, []string{"application/zip", "application/x-tar"}, cfg.Libmagic.UsedFor)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "libmagic:\n  db_file: /opt/magic.mgc\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/magic.mgc", cfg.Libmagic.DBFile)
	assert.Equal(t, Default().MimeInfoDB.Root, cfg.MimeInfoDB.Root)
	assert.Equal(t, []string{"application/zip"}, cfg.Libmagic.UsedFor)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[mime_info_db]
root = "/srv/mime"

[libmagic]
used_for = ["application/x-7z-compressed"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/mime", cfg.MimeInfoDB.Root)
	assert.Equal(t, []string{"application/x-7z-compressed"}, cfg.Libmagic.UsedFor)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CLASSIFILES_LIBMAGIC__DB_FILE", "/env/magic.mgc")
	t.Setenv("CLASSIFILES_LIBMAGIC__USED_FOR", "application/zip, application/gzip")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/magic.mgc", cfg.Libmagic.DBFile)
	assert.Equal(t, []string{"application/zip", "application/gzip"}, cfg.Libmagic.UsedFor)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	broken := writeConfig(t, "config.yaml", "mime_info_db: [unterminated\n")
	_, err = Load(broken)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "mime_info_db:\n  root: /x\n")
		cfg, used := LoadOrDefault(path)
		assert.Equal(t, path, used)
		assert.Equal(t, "/x", cfg.MimeInfoDB.Root)
	})

	t.Run("broken file falls back", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "{{{")
		cfg, used := LoadOrDefault(path)
		assert.Empty(t, used)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("config dir lookup", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, dir)
		path := filepath.Join(dir, paths.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("libmagic:\n  used_for: []\n"), 0644))

		cfg, used := LoadOrDefault("")
		assert.Equal(t, path, used)
		assert.Empty(t, cfg.Libmagic.UsedFor)
	})
}

func TestRender(t *testing.T) {
	cfg := Default()
	cfg.Libmagic.UsedFor = []string{"application/zip", "application/x-rar"}

	data, err := Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# classifiles configuration")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)

	path := writeConfig(t, "rendered.yaml", string(data))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
