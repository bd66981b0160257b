// Package collections provides generic data structures.
package collections

import (
	"fmt"
	"maps"
	"slices"
)

// Set represents a mathematical set of comparable elements.
// It is implemented as a map with empty struct values for memory efficiency.
type Set[T comparable] map[T]struct{}

// NewSet creates a new set containing the given values.
func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	s.Add(vals...)
	return s
}

// TransformSet applies a transformation to each element and returns the
// resulting set. Transformed values that collide collapse into one element.
func TransformSet[S, T comparable](s Set[S], transform func(S) T) Set[T] {
	result := make(Set[T], len(s))
	for v := range s {
		result[transform(v)] = struct{}{}
	}
	return result
}

// Add adds the given values to the set.
func (s Set[T]) Add(vals ...T) {
	for _, v := range vals {
		s[v] = struct{}{}
	}
}

// Remove removes the given values from the set.
func (s Set[T]) Remove(vals ...T) {
	for _, v := range vals {
		delete(s, v)
	}
}

// Contains returns true if the set contains all of the given values.
func (s Set[T]) Contains(vals ...T) bool {
	for _, v := range vals {
		if _, ok := s[v]; !ok {
			return false
		}
	}
	return true
}

// ContainsAny returns true if the set contains at least one of the given values.
func (s Set[T]) ContainsAny(vals ...T) bool {
	for _, v := range vals {
		if _, ok := s[v]; ok {
			return true
		}
	}
	return false
}

// Members returns all elements in the set as a slice.
func (s Set[T]) Members() []T {
	return slices.Collect(maps.Keys(s))
}

// Size returns the number of elements in the set.
func (s Set[T]) Size() int {
	return len(s)
}

// Empty returns true if the set contains no elements.
func (s Set[T]) Empty() bool {
	return len(s) == 0
}

// Clone returns a copy of s.
func (s Set[T]) Clone() Set[T] {
	return maps.Clone(s)
}

// String returns a string representation of the set.
func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}
