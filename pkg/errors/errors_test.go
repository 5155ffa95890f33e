// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, aggregation and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/batch-rename/pkg/errors"
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
			name:    "vanished_error",
			code:    errors.ErrVanished,
			message: "no file found",
			wantStr: "[VANISHED] no file found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "rename command is missing",
			wantStr: "[INVALID_INPUT] rename command is missing",
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPath, "`%s` does not contain a parent", "/")
	assert.Equal(t, "`/` does not contain a parent", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exec: \"nope\": executable file not found in $PATH")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSpawn, "failed to run `nope a.txt`")

		assert.Equal(t, errors.ErrSpawn, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t,
			"[SPAWN] failed to run `nope a.txt`: exec: \"nope\": executable file not found in $PATH",
			err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCommandFailure, "failed").
		WithDetail("exit_code", 3).
		WithDetail("dir", "/tmp/x")

	assert.Equal(t, 3, err.Details["exit_code"])
	assert.Equal(t, "/tmp/x", err.Details["dir"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrVanished, "error 1")
	err2 := errors.New(errors.ErrVanished, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrPath, "bad path"),
			code:     errors.ErrPath,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrPath, "bad path"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrTempDir, "denied"),
			code:     errors.ErrTempDir,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrPath,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrPath,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrInputRead, errors.GetErrorCode(errors.New(errors.ErrInputRead, "eof")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
}

func TestAggregate(t *testing.T) {
	t.Run("nothing_to_aggregate", func(t *testing.T) {
		assert.NoError(t, errors.Aggregate(nil))
		assert.NoError(t, errors.Aggregate([]error{nil, nil}))
	})

	t.Run("keeps_every_failure", func(t *testing.T) {
		first := errors.New(errors.ErrCommandFailure, "first")
		second := errors.New(errors.ErrVanished, "second")

		err := errors.Aggregate([]error{first, nil, second})
		require.Error(t, err)

		assert.Equal(t, errors.ErrAggregate, errors.GetErrorCode(err))
		assert.Equal(t, 2, errors.GetErrorDetails(err)["count"])
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
		assert.Contains(t, err.Error(), "2 tasks failed")
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})

	t.Run("single_failure_message", func(t *testing.T) {
		err := errors.Aggregate([]error{stderrors.New("boom")})
		assert.Contains(t, err.Error(), "1 task failed")
	})
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	cmdErr := errors.Wrap(rootCause, errors.ErrCommandFailure, "rename failed")
	batchErr := errors.Wrap(cmdErr, errors.ErrAggregate, "1 task failed")

	assert.True(t, errors.IsErrorCode(batchErr, errors.ErrAggregate))

	var middle *errors.Error
	require.True(t, stderrors.As(batchErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrCommandFailure, middle.Code)

	assert.ErrorIs(t, batchErr, rootCause)
}
