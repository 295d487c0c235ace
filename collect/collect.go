// Package collect provides the small typed containers that cross the engine
// boundary alongside graphs: positional lists, membership sets, and key-value
// maps. Result objects hand these out, and they register in a handle registry
// like any other engine object.
//
// Containers are not synchronized; the single-writer discipline of the engine
// applies to them as well.
package collect

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// ErrIndexOutOfBounds is returned by positional access beyond the list size.
var ErrIndexOutOfBounds = fmt.Errorf("collect: %w", status.ErrIndexOutOfBounds)

// ErrKeyNotFound is returned by Map.Get for an absent key.
var ErrKeyNotFound = fmt.Errorf("collect: key not found: %w", status.ErrNoSuchElement)

// List is an ordered, index-addressable sequence.
type List[T comparable] struct {
	items []T
}

// NewList returns an empty list.
func NewList[T comparable]() *List[T] { return &List[T]{} }

// Add appends v. O(1) amortized.
func (l *List[T]) Add(v T) { l.items = append(l.items, v) }

// Get returns the element at position i, or ErrIndexOutOfBounds.
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, fmt.Errorf("collect: index %d of %d: %w", i, len(l.items), status.ErrIndexOutOfBounds)
	}

	return l.items[i], nil
}

// Contains reports membership. O(n).
func (l *List[T]) Contains(v T) bool {
	for _, x := range l.items {
		if x == v {
			return true
		}
	}

	return false
}

// Remove deletes the first occurrence of v, reporting whether one was found.
func (l *List[T]) Remove(v T) bool {
	for i, x := range l.items {
		if x == v {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Clear removes all elements.
func (l *List[T]) Clear() { l.items = l.items[:0] }

// Iterator walks the list in positional order over a snapshot.
func (l *List[T]) Iterator() iterate.Iterator[T] {
	snap := make([]T, len(l.items))
	copy(snap, l.items)

	return iterate.FromSlice(snap)
}

// Set is an unordered membership container that remembers insertion order for
// deterministic iteration (the linked variant of the boundary surface).
type Set[T comparable] struct {
	index map[T]int
	order []T
}

// NewSet returns an empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{index: make(map[T]int)}
}

// Add inserts v, reporting whether it was absent. O(1).
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)

	return true
}

// Contains reports membership. O(1).
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Remove deletes v, reporting whether it was present.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}

	return true
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.order) }

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.index = make(map[T]int)
	s.order = s.order[:0]
}

// Iterator walks the set in insertion order over a snapshot.
func (s *Set[T]) Iterator() iterate.Iterator[T] {
	snap := make([]T, len(s.order))
	copy(snap, s.order)

	return iterate.FromSlice(snap)
}

// Map is a key-value container with a miss-is-an-error Get, matching the
// lookup contract of result accessors.
type Map[K comparable, V any] struct {
	m map[K]V
}

// NewMap returns an empty map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Put stores v under k, replacing any previous value.
func (m *Map[K, V]) Put(k K, v V) { m.m[k] = v }

// Get returns the value for k, or ErrKeyNotFound.
func (m *Map[K, V]) Get(k K) (V, error) {
	v, ok := m.m[k]
	if !ok {
		var zero V
		return zero, fmt.Errorf("collect: key %v: %w", k, status.ErrNoSuchElement)
	}

	return v, nil
}

// ContainsKey reports whether k is present.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.m[k]
	return ok
}

// Remove deletes k, reporting whether it was present.
func (m *Map[K, V]) Remove(k K) bool {
	_, ok := m.m[k]
	delete(m.m, k)

	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.m) }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.m = make(map[K]V) }

// Keys returns an iterator over the keys. Order is unspecified unless K is
// ordered via the Sorted helper below.
func (m *Map[K, V]) Keys() iterate.Iterator[K] {
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}

	return iterate.FromSlice(keys)
}

// SortedInt64Keys returns ascending keys for int64-keyed maps; the common
// deterministic iteration the engine needs for vertex/edge keyed results.
func SortedInt64Keys[V any](m *Map[int64, V]) []int64 {
	keys := make([]int64, 0, m.Len())
	for k := range m.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
