// Package stacktrace uses the go runtime to capture stack trace data and
// turn it into stable, serializable frame descriptors.
package stacktrace

import (
	"regexp"
	"strings"

	"github.com/quinnturner/tslog/relpath"
)

const (
	maxFrames     = 50
	runtimePrefix = "runtime."
	testingPrefix = "testing."

	// frames to drop so that callers of Capture see themselves as frame 0:
	// runtime.Callers, RawFrames, Capture.
	captureSkip = 3
)

// match the filename of the go runtime package
// eg `/pkg/mod/golang.org/toolchain@v0.0.1-go1.22.4.linux-amd64/src/runtime/panic.go`
var runtimeRegex = regexp.MustCompile(`go[^/]*/src/runtime/[^.]+\.go`)

// match the filename of the go testing package
var testingRegex = regexp.MustCompile(`go[^/]*/src/testing/[^.]+\.go`)

// Frame is a stable descriptor for one call frame. Fields that the source
// could not supply are zero-valued; a Frame is always produced for every
// raw frame that survives filtering.
type Frame struct {
	// FilePath is the source file path relative to the working directory
	// snapshot taken at process start.
	FilePath string `json:"filePath"`
	// FullFilePath is the file path exactly as reported by the source.
	FullFilePath string `json:"fullFilePath"`
	// FileName is the final path component of FullFilePath.
	FileName      string `json:"fileName"`
	Line          int    `json:"line,omitempty"`
	Column        int    `json:"column,omitempty"`
	IsConstructor bool   `json:"isConstructor,omitempty"`
	// FunctionName is the function identifier without its package path,
	// eg `NewLogger` or `Normalizer.Normalize`.
	FunctionName string `json:"functionName,omitempty"`
	// TypeName and MethodName are set for method calls.
	TypeName   string `json:"typeName,omitempty"`
	MethodName string `json:"methodName,omitempty"`
}

// Stack represents a program stack trace as a series of frames,
// innermost first.
type Stack []Frame

var source Source = RuntimeSource{}

// Capture returns the call stack at the point of the call, innermost
// first. The frame of Capture itself is never included. When
// filterInternals is true, frames belonging to the Go runtime and testing
// machinery are dropped; filtering removes frames but never reorders them.
// If the runtime cannot supply frame metadata the result is nil.
func Capture(filterInternals bool) Stack {
	return FromRaw(source.RawFrames(captureSkip), filterInternals)
}

// FromRaw builds frame descriptors from raw frames supplied by any Source,
// preserving order and applying internal-frame filtering when requested.
func FromRaw(raw []RawFrame, filterInternals bool) Stack {
	var stack Stack
	for _, r := range raw {
		if filterInternals && isInternal(r) {
			continue
		}
		stack = append(stack, BuildFrame(r))
	}
	return stack
}

// BuildFrame converts one raw frame into a Frame descriptor. It never
// fails: missing raw fields become zero values.
func BuildFrame(raw RawFrame) Frame {
	fn, typeName, method := splitFunction(raw.Function)
	return Frame{
		FilePath:      relpath.Normalize(raw.File),
		FullFilePath:  raw.File,
		FileName:      baseName(raw.File),
		Line:          raw.Line,
		Column:        raw.Column,
		IsConstructor: raw.IsConstructor,
		FunctionName:  fn,
		TypeName:      typeName,
		MethodName:    method,
	}
}

// isInternal reports whether a raw frame belongs to the Go runtime or
// testing machinery rather than application code. Frames with no file
// information are treated as internal.
func isInternal(raw RawFrame) bool {
	switch {
	case raw.File == "":
		return true
	case strings.HasPrefix(raw.Function, runtimePrefix) && runtimeRegex.MatchString(raw.File):
		return true
	case strings.HasPrefix(raw.Function, testingPrefix) && testingRegex.MatchString(raw.File):
		return true
	}
	return false
}

// baseName returns the final path component of file, or "" when absent.
func baseName(file string) string {
	if file == "" {
		return ""
	}
	if i := strings.LastIndex(file, relpath.Separator); i >= 0 {
		return file[i+1:]
	}
	return file
}

// splitFunction breaks a qualified function name into its bare name and,
// for methods, the receiver type and method name.
//
//	pkg/path.Func          -> ("Func", "", "")
//	pkg/path.(*Type).Meth  -> ("Type.Meth", "Type", "Meth")
//	pkg/path.Type.Meth     -> ("Type.Meth", "Type", "Meth")
//	pkg/path.Func.func1    -> ("Func.func1", "", "")
func splitFunction(qualified string) (fn, typeName, method string) {
	if qualified == "" {
		return "", "", ""
	}

	rest := qualified
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		rest = rest[i+1:]
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "(*") {
		if i := strings.Index(rest, ")."); i >= 0 {
			typeName = rest[2:i]
			method = rest[i+2:]
			return typeName + "." + method, typeName, method
		}
		return rest, "", ""
	}

	if i := strings.IndexByte(rest, '.'); i >= 0 && !strings.HasPrefix(rest[i+1:], "func") {
		typeName = rest[:i]
		method = rest[i+1:]
		return rest, typeName, method
	}

	return rest, "", ""
}
