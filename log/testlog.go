package log

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// NewTestLogger creates a new logger for testing.
// NOTE: Since this logger uses the testing t.Log method,
// it will only log when the test fails. Additionally,
// it will cause a panic if the logger is called after the
// test has completed. This can be helpful for finding race conditions.
func NewTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slogt.New(t, slogt.JSON()).With(slog.String("test", t.Name()))
}
