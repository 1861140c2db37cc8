package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_a_directory",
			code:    errors.ErrNotADirectory,
			message: "out is not a directory",
			wantStr: "[NOT_A_DIRECTORY] out is not a directory",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "missing input path argument",
			wantStr: "[INVALID_INPUT] missing input path argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileWrite, "ignored %d", 1))
	})

	t.Run("wrapped error is reachable", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrPermission, errors.ErrSymlinkCreate, "failed to link %s", "a")

		assert.Equal(t, "[SYMLINK_CREATE] failed to link a: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})
}

func TestCodeHelpers(t *testing.T) {
	base := errors.New(errors.ErrPlacementExhausted, "no free name").
		WithDetail("dir", "/out/image/png")
	var wrapped error = errors.Wrap(base, errors.ErrInternal, "scan failed")

	assert.True(t, errors.IsErrorCode(base, errors.ErrPlacementExhausted))
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, "/out/image/png", errors.GetErrorDetails(base)["dir"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))

	// Is matches on code
	target := errors.New(errors.ErrPlacementExhausted, "other message")
	require.True(t, stderrors.Is(wrapped, target))
}
