package types_test

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestFileType(t *testing.T) {
	tests := []struct {
		name     string
		fileType types.FileType
		category string
		str      string
	}{
		{"unknown", types.UnknownFileType(), "unknown", "unknown"},
		{"generic", types.FileType{MIME: "application/octet-stream"}, "application/octet-stream", "application/octet-stream"},
		{"with ext", types.FileType{MIME: "image/png", Ext: "png"}, "image/png", "image/png (.png)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.fileType.Category())
			assert.Equal(t, tt.str, tt.fileType.String())
		})
	}

	assert.True(t, types.UnknownFileType().IsUnknown())
	assert.False(t, types.UnknownFileType().HasExt())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, types.EntryFile, types.KindOf(0644))
	assert.Equal(t, types.EntryDir, types.KindOf(fs.ModeDir|0755))
	assert.Equal(t, types.EntrySymlink, types.KindOf(fs.ModeSymlink|0777))
	assert.Equal(t, types.EntryOther, types.KindOf(fs.ModeNamedPipe))
	assert.Equal(t, "symlink", types.EntrySymlink.String())
}

func TestRunResultCategories(t *testing.T) {
	result := types.NewRunResult("scan", "in", "out")
	result.ByCategory["text/plain"] = 2
	result.ByCategory["application/pdf"] = 1
	result.ByCategory["unknown"] = 4

	assert.Equal(t, []string{"application/pdf", "text/plain", "unknown"}, result.Categories())
}
