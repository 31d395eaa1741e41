package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapMessage(t *testing.T) {
	err := Wrap(CodeInvalidInput, "base_price must be positive", nil)
	require.EqualError(t, err, "base_price must be positive")

	cause := errors.New("boom")
	err = Wrap(CodeInvalidInput, "bad request", cause)
	require.EqualError(t, err, "bad request: boom")
	require.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, "", CodeOf(nil))
	require.Equal(t, CodeInternal, CodeOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", Wrap(CodeInvalidToken, "expired", nil))
	require.Equal(t, CodeInvalidToken, CodeOf(wrapped))
	require.True(t, IsCode(wrapped, CodeInvalidToken))
	require.False(t, IsCode(wrapped, CodeInvalidInput))
}
