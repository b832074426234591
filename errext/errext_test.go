package errext

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuxd6825/locatorgen/errext/exitcodes"
)

func assertHasHint(t *testing.T, err error, hint string) {
	t.Helper()
	var typederr HasHint
	require.ErrorAs(t, err, &typederr)
	assert.Equal(t, hint, typederr.Hint())
}

func assertHasExitCode(t *testing.T, err error, exitcode exitcodes.ExitCode) {
	t.Helper()
	var typederr HasExitCode
	require.ErrorAs(t, err, &typederr)
	assert.Equal(t, exitcode, typederr.ExitCode())
}

func TestErrextHelpers(t *testing.T) {
	t.Parallel()

	const testExitCode exitcodes.ExitCode = 13
	assert.Nil(t, WithHint(nil, "test hint"))
	assert.Nil(t, WithExitCodeIfNone(nil, testExitCode))

	errBase := errors.New("base error")
	errBaseWithHint := WithHint(errBase, "test hint")
	assertHasHint(t, errBaseWithHint, "test hint")
	errBaseWithTwoHints := WithHint(errBaseWithHint, "better hint")
	assertHasHint(t, errBaseWithTwoHints, "better hint (test hint)")

	errWrapperWithHints := fmt.Errorf("wrapper error: %w", errBaseWithTwoHints)
	assertHasHint(t, errWrapperWithHints, "better hint (test hint)")

	errWithExitCode := WithExitCodeIfNone(errWrapperWithHints, testExitCode)
	assertHasHint(t, errWithExitCode, "better hint (test hint)")
	assertHasExitCode(t, errWithExitCode, testExitCode)

	errWithExitCodeAgain := WithExitCodeIfNone(errWithExitCode, exitcodes.InvalidArgument)
	assertHasExitCode(t, errWithExitCodeAgain, testExitCode)

	assert.ErrorIs(t, errWithExitCodeAgain, errBase)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	msg, fields := Format(nil)
	assert.Empty(t, msg)
	assert.Nil(t, fields)

	msg, fields = Format(errors.New("plain"))
	assert.Equal(t, "plain", msg)
	assert.Empty(t, fields)

	err := fmt.Errorf("invalid --kind: %w", WithHint(errors.New(`unknown locator kind "role"`), "use one of: label"))
	msg, fields = Format(err)
	assert.Equal(t, `invalid --kind: unknown locator kind "role"`, msg)
	assert.Equal(t, map[string]interface{}{"hint": "use one of: label"}, fields)
}
