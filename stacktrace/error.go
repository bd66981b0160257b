package stacktrace

import (
	"errors"
	"sync/atomic"

	"github.com/quinnturner/tslog/xerrors"
)

const (
	// depth of stack to ignore so that callers of Wrap don't see the call
	// to Wrap itself: runtime.Callers, RawFrames, wrapSingleError, Wrap.
	wrapStackDepth = 4
)

// Disabled disables stack collection in Wrap when set to true.
var Disabled atomic.Bool

// Wrap extends an error with the stack at the point where Wrap was called.
// If the error already carries a stack, it is not wrapped again. For joined
// errors, the wrap is applied to each individual error.
func Wrap(err error) error {
	if Disabled.Load() || err == nil {
		return err
	}

	if joined := xerrors.Unjoin(err); len(joined) > 1 {
		wrapped := make([]error, len(joined))
		for i, e := range joined {
			wrapped[i] = Wrap(e)
		}
		return errors.Join(wrapped...)
	}

	return wrapSingleError(err)
}

func wrapSingleError(err error) error {
	if _, ok := xerrors.Extract[Stack](err); !ok {
		return xerrors.Extend(FromRaw(source.RawFrames(wrapStackDepth), true), err)
	}
	return err
}

// Extract returns the Stack recorded on the error, unmodified, or nil if
// the error carries none. An empty recorded stack is indistinguishable
// from no stack; either way the caller gets nothing to render.
func Extract(err error) Stack {
	st, ok := xerrors.Extract[Stack](err)
	if !ok {
		return nil
	}
	return st
}
