// Package codeframe extracts a bounded window of source lines around a
// target line in a file, for enriching error reports.
//
// Extraction is best-effort: any failure to read the file yields no frame
// rather than an error. Callers treat a missing frame as "nothing to show".
package codeframe

import (
	"os"
	"strings"
)

// DefaultContextLines is the number of lines included before and after the
// target line when the caller has no preference.
const DefaultContextLines = 5

// Frame is a window of source lines around a target line.
type Frame struct {
	// FirstLineNumber is the 1-based number of the first line in LinesBefore,
	// or of the relevant line itself when no lines precede it.
	FirstLineNumber int `json:"firstLineNumber"`
	// LineNumber and ColumnNumber locate the target, 1-based.
	// ColumnNumber is 0 when unknown.
	LineNumber   int `json:"lineNumber"`
	ColumnNumber int `json:"columnNumber,omitempty"`
	// LinesBefore holds the lines strictly before the target line, clipped
	// at the start of the file.
	LinesBefore []string `json:"linesBefore"`
	// RelevantLine is the target line's text. It stays empty when the file
	// has fewer lines than LineNumber.
	RelevantLine string `json:"relevantLine"`
	// LinesAfter holds the lines strictly after the target line, clipped
	// at the end of the file.
	LinesAfter []string `json:"linesAfter"`
}

// Extract reads the file at path and returns the window of contextLines
// lines around the 1-based line. It reports ok=false when the file cannot
// be read or line is not positive; read failures are never propagated.
// Extract performs no caching; callers that extract repeatedly for the
// same location should cache at their own layer.
func Extract(path string, line, column, contextLines int) (Frame, bool) {
	if line < 1 {
		return Frame{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, false
	}

	lines := strings.Split(string(data), "\n")
	target := line - 1
	startAt := max(0, target-contextLines)
	endAt := min(len(lines), target+contextLines)

	frame := Frame{
		FirstLineNumber: startAt + 1,
		LineNumber:      line,
		ColumnNumber:    column,
		LinesBefore:     []string{},
		LinesAfter:      []string{},
	}

	if before := min(target, len(lines)); startAt < before {
		frame.LinesBefore = lines[startAt:before]
	}
	if target < len(lines) {
		frame.RelevantLine = lines[target]
	}
	if after := min(endAt+1, len(lines)); target+1 < after {
		frame.LinesAfter = lines[target+1 : after]
	}

	return frame, true
}
