package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorMessage(t *testing.T) {
	base := errors.New("maxWidth: argument out of range")

	err := NewArgumentError(base, "width is too small")
	assert.Equal(t, "width is too small: maxWidth: argument out of range", err.Error())
	assert.Equal(t, ExitUsageError, err.ExitCode)
	assert.True(t, Is(err, base))

	assert.Equal(t, "missing path", NewUsageError("missing path").Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitError, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitConfigError, GetExitCode(NewConfigError(nil, "bad config")))
	assert.Equal(t, ExitUsageError, GetExitCode(fmt.Errorf("wrapped: %w", NewUsageError("usage"))))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	base := errors.New("base")
	assert.Equal(t, "reading stdin: base", Wrap(base, "reading stdin").Error())
	assert.Equal(t, "line 3: base", Wrapf(base, "line %d", 3).Error())
	assert.True(t, Is(Wrap(base, "x"), base))
}

func TestFormatError(t *testing.T) {
	err := NewError(errors.New("disk full"), "Failed to save config").WithStackTrace()
	assert.NotEmpty(t, err.StackTrace)

	assert.Equal(t, "Failed to save config", FormatError(err, false))

	detailed := FormatError(err, true)
	assert.Contains(t, detailed, "Technical details:\n  disk full")
	assert.Contains(t, detailed, "Stack trace:")

	assert.Equal(t, "plain", FormatError(errors.New("plain"), true))
}
