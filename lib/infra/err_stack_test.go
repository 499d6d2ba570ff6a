package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestSentinel = errors.New("[err-stack] test sentinel")

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("[err-stack] something broken")
	require.Error(t, err)
	assert.Equal(t, "[err-stack] something broken", err.Error())

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "[err-stack] something broken")
	assert.Contains(t, verbose, "TestNewErrorStack")
}

func TestWrapErrorStack(t *testing.T) {
	require.Nil(t, WrapErrorStack(nil))

	err := WrapErrorStack(errTestSentinel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errTestSentinel))
	assert.Equal(t, errTestSentinel.Error(), err.Error())
	assert.Equal(t, errTestSentinel.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", errTestSentinel.Error()), fmt.Sprintf("%q", err))

	// Re-wrapping keeps the frames captured by the first wrap.
	rewrapped := WrapErrorStack(err)
	assert.Same(t, err.(*ErrorStack), rewrapped.(*ErrorStack))
}
