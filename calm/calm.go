// Package calm allows users to call a function and capture any panic as an
// error carrying frame descriptors instead.
package calm

import (
	"fmt"

	"github.com/quinnturner/tslog/stacktrace"
	"github.com/quinnturner/tslog/xerrors"
)

const (
	// depth of stack to ignore so that the trace from a recovered panic
	// does not include the deferred recovery function itself:
	// runtime.Callers, RawFrames, the deferred closure.
	panicStackDepth = 3
)

// Unpanic executes the given function catching any panic and returning it
// as an error with the captured stack.
// WARNING: It is not possible to recover from a panic in a goroutine
// spawned by `f()`. Users should ensure that any goroutines created by
// `f()` are likewise guarded against panics.
func Unpanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			wrapped := fmt.Errorf("panic: %v", r)
			raw := stacktrace.RuntimeSource{}.RawFrames(panicStackDepth)
			err = xerrors.Extend(stacktrace.FromRaw(raw, true), wrapped)
		}
	}()

	return f()
}
