// Package xerrors provides generic error wrapping, allowing any data type
// to ride along with an error and be recovered later.
package xerrors

import (
	"errors"
	"log/slog"
)

// ExtendedError carries additional typed data alongside an error.
type ExtendedError[T any] struct {
	Data T
	err  error
}

// Error returns the message of the underlying error.
func (e ExtendedError[T]) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying wrapped error.
func (e ExtendedError[T]) Unwrap() error {
	return e.err
}

// LogValue implements slog.LogValuer, exposing the extended data.
func (e ExtendedError[T]) LogValue() slog.Value {
	if lv, ok := any(e.Data).(slog.LogValuer); ok {
		return lv.LogValue()
	}
	return slog.AnyValue(e.Data)
}

// Extend wraps err with the given data. Extending nil yields nil.
func Extend[T any](data T, err error) error {
	if err == nil {
		return nil
	}
	return ExtendedError[T]{Data: data, err: err}
}

// Extract recovers data of type T from anywhere in the error chain.
// If err was extended multiple times with the same type, the outermost
// match wins.
func Extract[T any](err error) (T, bool) {
	var extended ExtendedError[T]
	ok := errors.As(err, &extended)
	return extended.Data, ok
}

// Unjoin returns the direct children of an error created with errors.Join,
// or a single-element slice for any other non-nil error.
func Unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
