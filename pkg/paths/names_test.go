package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantStem string
		wantExt  string
		wantOK   bool
	}{
		{"plain", "report", "report", "", false},
		{"simple", "report.pdf", "report", "pdf", true},
		{"double", "archive.tar.gz", "archive.tar", "gz", true},
		{"hidden", ".bashrc", ".bashrc", "", false},
		{"hidden with ext", ".config.yaml", ".config", "yaml", true},
		{"trailing dot", "name.", "name", "", true},
		{"lns", "link.lns", "link", "lns", true},
		{"bare lns", ".lns", ".lns", "", false},
		{"dotdot", "..", "..", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext, ok := SplitExt(tt.input)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantExt, ext)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFileName(t *testing.T) {
	name, ok := FileName("/in/photos/photo.jpg")
	assert.True(t, ok)
	assert.Equal(t, "photo.jpg", name)

	name, ok = FileName("relative/dir/")
	assert.True(t, ok)
	assert.Equal(t, "dir", name)

	for _, p := range []string{"", "/", ".", "..", "a/../.."} {
		_, ok := FileName(p)
		assert.False(t, ok, "path %q", p)
	}
}

func TestRelativeParent(t *testing.T) {
	root := filepath.FromSlash("/in")

	assert.Equal(t, filepath.FromSlash("a/b"), RelativeParent(root, filepath.FromSlash("/in/a/b/file")))
	assert.Equal(t, "", RelativeParent(root, filepath.FromSlash("/in/file")))
	assert.Equal(t, "", RelativeParent(root, filepath.FromSlash("/elsewhere/x/file")))
	assert.Equal(t, "", RelativeParent("relative", filepath.FromSlash("/abs/file")))
	// a single file input is its own root
	assert.Equal(t, "", RelativeParent(filepath.FromSlash("/in/file"), filepath.FromSlash("/in/file")))
}

func TestRelativeUnder(t *testing.T) {
	rel, ok := RelativeUnder("/in", "/in")
	assert.True(t, ok)
	assert.Equal(t, ".", rel)

	rel, ok = RelativeUnder("/in", "/in/..x/y")
	assert.True(t, ok)
	assert.Equal(t, filepath.FromSlash("..x/y"), rel)

	_, ok = RelativeUnder("/in", "/out/y")
	assert.False(t, ok)
}

func TestOverridableDirs(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/cfg")
	t.Setenv(EnvStateDir, "/tmp/state")

	assert.Equal(t, "/tmp/cfg", ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/state", LogFileName), LogFile())
	assert.Equal(t, []string{ConfigFileName, filepath.Join("/tmp/cfg", ConfigFileName)}, ConfigCandidates())
}
