package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupError(t *testing.T) {
	t.Run("new error formats with code", func(t *testing.T) {
		err := New(ErrGitNotRepo, "not a git repository")
		assert.Equal(t, "[GIT_NOT_REPO] not a git repository", err.Error())
	})

	t.Run("wrapped error includes cause", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := Wrap(cause, ErrDirCreate, "failed to create directory")
		assert.Equal(t, "[DIR_CREATE] failed to create directory: permission denied", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("wrap nil returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrInternal, "should not happen"))
		assert.Nil(t, Wrapf(nil, ErrInternal, "should not happen: %d", 1))
	})

	t.Run("newf formats message", func(t *testing.T) {
		err := Newf(ErrSubmoduleAdd, "failed to add submodule %q", "addons/aerobeat-core")
		assert.Contains(t, err.Error(), `"addons/aerobeat-core"`)
	})

	t.Run("is matches by code", func(t *testing.T) {
		err := New(ErrProjectFileMissing, "project.godot not found")
		assert.True(t, errors.Is(err, New(ErrProjectFileMissing, "different message")))
		assert.False(t, errors.Is(err, New(ErrFileAccess, "project.godot not found")))
	})
}

func TestErrorCodeHelpers(t *testing.T) {
	err := Newf(ErrGitCommand, "git exited with status %d", 128)

	assert.True(t, IsErrorCode(err, ErrGitCommand))
	assert.False(t, IsErrorCode(err, ErrGitNotRepo))
	assert.Equal(t, ErrGitCommand, GetErrorCode(err))

	// Codes survive fmt wrapping
	wrapped := fmt.Errorf("submodule sync: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrGitCommand))

	// Plain errors report ErrUnknown
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
	assert.False(t, IsErrorCode(nil, ErrGitCommand))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSubmoduleAdd, "git submodule add failed").
		WithDetail("source", "../aerobeat-core").
		WithDetail("path", "addons/aerobeat-core")

	require.NotNil(t, err.Details)
	assert.Equal(t, "../aerobeat-core", err.Details["source"])
	assert.Equal(t, "addons/aerobeat-core", err.Details["path"])
}
