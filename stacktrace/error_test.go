package stacktrace_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinnturner/tslog/stacktrace"
)

var errTest = fmt.Errorf("this is a test error")

func TestWrapNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, stacktrace.Wrap(nil))
	assert.Nil(t, stacktrace.Extract(nil))
}

func TestWrapRecordsStack(t *testing.T) {
	t.Parallel()

	err := stacktrace.Wrap(errTest)
	require.Error(t, err)
	assert.ErrorIs(t, err, errTest)

	trace := stacktrace.Extract(err)
	require.NotEmpty(t, trace)
	assert.Equal(t, "TestWrapRecordsStack", trace[0].FunctionName)
}

func TestWrapOnlyOnce(t *testing.T) {
	t.Parallel()

	err := stacktrace.Wrap(errTest)
	first := stacktrace.Extract(err)

	// a second wrap keeps the original recorded stack
	err = stacktrace.Wrap(err)
	second := stacktrace.Extract(err)

	assert.Equal(t, first, second)
}

func TestWrapJoined(t *testing.T) {
	t.Parallel()

	errA := errors.New("error a")
	errB := errors.New("error b")
	err := stacktrace.Wrap(errors.Join(errA, errB))

	// each child carries its own stack
	for _, child := range []error{errA, errB} {
		assert.ErrorIs(t, err, child)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	for _, child := range joined.Unwrap() {
		assert.NotEmpty(t, stacktrace.Extract(child))
	}
}

func TestExtractWithoutStack(t *testing.T) {
	t.Parallel()

	assert.Nil(t, stacktrace.Extract(errTest))
}

func TestDisabled(t *testing.T) {
	stacktrace.Disabled.Store(true)
	defer stacktrace.Disabled.Store(false)

	err := stacktrace.Wrap(errTest)
	assert.Nil(t, stacktrace.Extract(err))
}
