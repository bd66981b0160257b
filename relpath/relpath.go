// Package relpath reduces absolute file paths to paths relative to the
// working directory as it was when the process started.
//
// The comparison against the working directory is positional, not
// prefix-based: every path segment is checked against the working directory
// segment at the same index, even after the paths have already diverged. A
// segment that coincidentally equals the working directory segment at its
// index is therefore dropped from the output even when it is logically part
// of the file's own path. This quirk is long-standing observable behavior
// and is kept intact; see the package tests.
package relpath

import (
	"os"
	"strings"
)

// Separator is the path separator used for normalization. The Go runtime
// reports source file paths with forward slashes on every platform.
const Separator = "/"

// Normalizer holds an immutable snapshot of working directory path
// segments, captured once at construction.
type Normalizer struct {
	cwd []string
}

// defaultNormalizer snapshots the working directory at process start.
// A later os.Chdir does not affect normalization.
var defaultNormalizer = New()

// New creates a Normalizer from the current working directory.
// If the working directory cannot be determined, the snapshot is empty and
// Normalize returns paths unchanged apart from the leading separator.
func New() *Normalizer {
	wd, err := os.Getwd()
	if err != nil {
		return &Normalizer{}
	}
	return NewFromDir(wd)
}

// NewFromDir creates a Normalizer anchored at the given directory.
func NewFromDir(dir string) *Normalizer {
	return &Normalizer{cwd: strings.Split(dir, Separator)}
}

// Normalize reduces path relative to the snapshot captured by the process
// default Normalizer.
func Normalize(path string) string {
	return defaultNormalizer.Normalize(path)
}

// Normalize reduces path relative to the working directory snapshot.
// An empty path passes through unchanged.
func (n *Normalizer) Normalize(path string) string {
	if path == "" {
		return ""
	}

	var b strings.Builder
	for i, seg := range strings.Split(path, Separator) {
		// Positional comparison at every index. See the package comment
		// for the resulting quirk.
		if i < len(n.cwd) && seg == n.cwd[i] {
			continue
		}
		b.WriteString(Separator)
		b.WriteString(seg)
	}

	return strings.TrimPrefix(b.String(), Separator)
}
