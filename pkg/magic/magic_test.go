package magic

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func recordingRunner(out string, err error, calls *[]call) Runner {
	return func(name string, args ...string) ([]byte, error) {
		*calls = append(*calls, call{name: name, args: args})
		return []byte(out), err
	}
}

func writeDB(t *testing.T) string {
	t.Helper()
	db := filepath.Join(t.TempDir(), "magic.mgc")
	require.NoError(t, os.WriteFile(db, []byte("compiled"), 0644))
	return db
}

func TestOpenRequiresDatabase(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mgc"), ModeMIMEType, WithRunner(recordingRunner("", nil, &[]call{})))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInspectorUnavailable))

	_, err = Open(t.TempDir(), ModeMIMEType, WithRunner(recordingRunner("", nil, &[]call{})))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInspectorUnavailable))
}

func TestOpenRequiresBinary(t *testing.T) {
	_, err := Open(writeDB(t), ModeMIMEType, WithBinary("classifiles-no-such-binary"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInspectorUnavailable))
}

func TestInspectModes(t *testing.T) {
	db := writeDB(t)

	tests := []struct {
		name     string
		mode     Mode
		output   string
		want     string
		wantFlag string
	}{
		{"mime type", ModeMIMEType, "application/x-rar\n", "application/x-rar", "--mime-type"},
		{"extension", ModeExtension, "jpeg/jpg/jpe/jfif\n", "jpeg/jpg/jpe/jfif", "--extension"},
		{"no extension", ModeExtension, "???\n", NoExtension, "--extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []call
			cookie, err := Open(db, tt.mode, WithRunner(recordingRunner(tt.output, nil, &calls)))
			require.NoError(t, err)
			assert.Equal(t, tt.mode, cookie.Mode())

			got, err := cookie.Inspect("/in/file")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			require.Len(t, calls, 1)
			assert.Equal(t, DefaultBinary, calls[0].name)
			assert.Contains(t, calls[0].args, tt.wantFlag)
			assert.Contains(t, calls[0].args, db)
			assert.Equal(t, "/in/file", calls[0].args[len(calls[0].args)-1])
		})
	}
}

func TestInspectFailures(t *testing.T) {
	db := writeDB(t)

	cookie, err := Open(db, ModeMIMEType, WithRunner(recordingRunner("", stderrors.New("exit status 1"), &[]call{})))
	require.NoError(t, err)
	_, err = cookie.Inspect("/in/file")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInspectorFailed))

	cookie, err = Open(db, ModeMIMEType, WithRunner(recordingRunner("\n", nil, &[]call{})))
	require.NoError(t, err)
	_, err = cookie.Inspect("/in/file")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInspectorFailed))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "mime-type", ModeMIMEType.String())
	assert.Equal(t, "extension", ModeExtension.String())
}
