// Package mask redacts values of selected keys from structured log
// payloads before they are emitted.
//
// Payloads are JSON-like trees of map[string]any, []any and primitives.
// Masking returns a fresh masked copy and leaves the caller's tree
// untouched, so a payload may be masked while other goroutines still read
// the original. Traversal is cycle-safe: a node reached twice, whether
// through a cycle or through two sibling keys, is processed exactly once
// and both references share the single masked copy.
package mask

import (
	"reflect"
	"strings"

	"github.com/quinnturner/tslog/collections"
)

// DefaultPlaceholder substitutes for masked values when the caller has no
// preference.
const DefaultPlaceholder = "[***]"

// Rules is a reusable masking configuration: a case-insensitive key set
// and the placeholder substituted for matching keys' values.
type Rules struct {
	keys        collections.Set[string]
	placeholder any
}

// NewRules builds masking rules. Key comparison is case-insensitive; the
// placeholder replaces a matching key's value regardless of the value's
// type or nesting depth.
func NewRules(keys []string, placeholder any) Rules {
	return Rules{
		keys:        collections.TransformSet(collections.NewSet(keys...), strings.ToLower),
		placeholder: placeholder,
	}
}

// Mask is a convenience for one-off masking with ad-hoc rules.
func Mask(payload any, keys []string, placeholder any) any {
	return NewRules(keys, placeholder).Mask(payload)
}

// Mask returns a masked copy of payload. Values of matching keys are
// replaced by the placeholder; everything else is copied unchanged.
// Structured values other than map[string]any and []any pass through
// by reference, unmasked.
func (r Rules) Mask(payload any) any {
	// visited maps node identity to its masked clone; scoped to this call
	visited := make(map[uintptr]any)

	switch v := payload.(type) {
	case map[string]any:
		return r.cloneMap(v, visited, 0, false)
	case []any:
		return r.cloneSlice(v, visited, 0, false)
	default:
		return payload
	}
}

// Matches reports whether key names a value that would be masked.
func (r Rules) Matches(key string) bool {
	return r.keys.Contains(strings.ToLower(key))
}

// Placeholder returns the configured placeholder value.
func (r Rules) Placeholder() any {
	return r.placeholder
}

// Empty reports whether the rules mask nothing.
func (r Rules) Empty() bool {
	return r.keys.Empty()
}

// child dispatches one child value, consulting the visited set first so
// that cycles terminate and aliased nodes are masked once.
func (r Rules) child(node any, visited map[uintptr]any) any {
	id, ok := identity(node)
	if !ok {
		return node
	}
	if clone, seen := visited[id]; seen {
		return clone
	}

	switch v := node.(type) {
	case map[string]any:
		return r.cloneMap(v, visited, id, true)
	case []any:
		return r.cloneSlice(v, visited, id, true)
	}
	return node
}

// cloneMap masks one map node. When track is set, the clone is registered
// under id before descending so self-references resolve to the clone.
func (r Rules) cloneMap(v map[string]any, visited map[uintptr]any, id uintptr, track bool) map[string]any {
	out := make(map[string]any, len(v))
	if track {
		visited[id] = out
	}
	for key, child := range v {
		if r.Matches(key) {
			// the placeholder is terminal: never descended into
			out[key] = r.placeholder
			continue
		}
		out[key] = r.child(child, visited)
	}
	return out
}

func (r Rules) cloneSlice(v []any, visited map[uintptr]any, id uintptr, track bool) []any {
	out := make([]any, len(v))
	if track {
		visited[id] = out
	}
	for i, child := range v {
		// slice indices are not textual keys and never match
		out[i] = r.child(child, visited)
	}
	return out
}

// identity returns a reference identity for nodes that can alias or cycle.
// Two structurally equal but distinct nodes have distinct identities; one
// node reached twice has one.
func identity(node any) (uintptr, bool) {
	switch node.(type) {
	case map[string]any, []any:
		rv := reflect.ValueOf(node)
		if rv.Kind() == reflect.Slice && rv.Len() == 0 {
			// zero-length slices may share a data pointer; treat each as unique
			return 0, false
		}
		return rv.Pointer(), true
	default:
		return 0, false
	}
}
