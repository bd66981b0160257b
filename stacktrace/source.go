package stacktrace

import "runtime"

// RawFrame is the contract between a stack source and the descriptor
// builder. A source fills in whatever the underlying mechanism can supply;
// missing fields stay zero-valued and never cause a failure downstream.
type RawFrame struct {
	// File is the full path of the source file, empty when unknown.
	File string
	// Function is the fully qualified function name as reported by the
	// source, eg `github.com/quinnturner/tslog/log.NewLogger`.
	Function string
	// Line and Column are 1-based positions, 0 when unknown. The Go
	// runtime does not report columns.
	Line   int
	Column int
	// IsConstructor marks constructor calls for sources whose runtime
	// distinguishes them. The Go runtime does not.
	IsConstructor bool
}

// Source supplies raw call frames, innermost first.
type Source interface {
	// RawFrames returns the current call stack. skip follows the
	// runtime.Callers convention: 0 identifies the frame of the capture
	// mechanism itself, larger values drop that many frames from the top.
	RawFrames(skip int) []RawFrame
}

// RuntimeSource captures frames from the Go runtime.
type RuntimeSource struct{}

// RawFrames implements Source using runtime.Callers.
func (RuntimeSource) RawFrames(skip int) []RawFrame {
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	raw := make([]RawFrame, 0, n)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		raw = append(raw, RawFrame{
			File:     frame.File,
			Function: frame.Function,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return raw
}
