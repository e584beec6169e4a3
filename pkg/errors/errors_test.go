package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/instl/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrSourceNotFound, "source does not exist: /x")

	assert.Equal(t, errors.ErrSourceNotFound, err.Code)
	assert.Equal(t, "source does not exist: /x", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidMode, "invalid mode: %s", "999")

	assert.Equal(t, errors.ErrInvalidMode, err.Code)
	assert.Equal(t, "invalid mode: 999", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrChmod, "failed to set mode")

	require.NotNil(t, err)
	assert.Equal(t, "failed to set mode: permission denied", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))

	assert.Nil(t, errors.Wrap(nil, errors.ErrChmod, "ignored"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidUser, "invalid user: '%s'", "nobody-here")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrInvalidUser, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrInvalidGroup, "other message")))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("boom"), errors.ErrRename, "failed to rename into place")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrRename))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrChown))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrRename))
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrDirCreate, "failed to create directories: /a/b")

	assert.Equal(t, errors.ErrDirCreate, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}
