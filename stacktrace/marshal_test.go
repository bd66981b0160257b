package stacktrace_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinnturner/tslog/stacktrace"
)

func TestMarshalerNoStack(t *testing.T) {
	t.Parallel()

	assert.Nil(t, stacktrace.Marshaler(errors.New("plain")))
	assert.Nil(t, stacktrace.Marshaler(nil))
}

func TestStackMarshaler(t *testing.T) {
	t.Parallel()

	stack := stacktrace.FromRaw([]stacktrace.RawFrame{
		{
			File:     "/home/user/project/server.go",
			Function: "github.com/user/project.(*Server).Start",
			Line:     12,
		},
		{
			File:     "/home/user/project/main.go",
			Function: "main.main",
			Line:     7,
		},
	}, false)

	out, ok := stacktrace.StackMarshaler(stack).([]map[string]string)
	require.True(t, ok)
	require.Len(t, out, 2)

	assert.Equal(t, "12", out[0]["line"])
	assert.Equal(t, "Server.Start", out[0]["func"])
	assert.Equal(t, "Server", out[0]["type"])
	assert.Equal(t, "Start", out[0]["method"])

	assert.Equal(t, "7", out[1]["line"])
	assert.Equal(t, "main", out[1]["func"])
	_, hasType := out[1]["type"]
	assert.False(t, hasType)
}
