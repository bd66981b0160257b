package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quinnturner/tslog/collections"
)

func TestNewSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "empty set",
			input:    []string{},
			expected: nil,
		},
		{
			name:     "single element",
			input:    []string{"a"},
			expected: []string{"a"},
		},
		{
			name:     "duplicate elements",
			input:    []string{"a", "b", "b", "a"},
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := collections.NewSet(tt.input...)
			assert.ElementsMatch(t, tt.expected, set.Members())
		})
	}
}

func TestSetAddRemove(t *testing.T) {
	t.Parallel()

	set := collections.NewSet[int]()
	set.Add(1, 2, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, set.Members())
	assert.Equal(t, 3, set.Size())

	set.Remove(2, 4)
	assert.ElementsMatch(t, []int{1, 3}, set.Members())
	assert.False(t, set.Empty())
}

func TestSetContains(t *testing.T) {
	t.Parallel()

	set := collections.NewSet("password", "token")

	assert.True(t, set.Contains("password"))
	assert.True(t, set.Contains("password", "token"))
	assert.False(t, set.Contains("password", "secret"))
	assert.True(t, set.ContainsAny("secret", "token"))
	assert.False(t, set.ContainsAny("secret", "apikey"))
}

func TestTransformSet(t *testing.T) {
	t.Parallel()

	set := collections.NewSet("Password", "TOKEN", "token")
	lowered := collections.TransformSet(set, strings.ToLower)

	assert.ElementsMatch(t, []string{"password", "token"}, lowered.Members())
}

func TestSetClone(t *testing.T) {
	t.Parallel()

	set := collections.NewSet(1, 2)
	clone := set.Clone()
	clone.Add(3)

	assert.Equal(t, 2, set.Size())
	assert.Equal(t, 3, clone.Size())
}
