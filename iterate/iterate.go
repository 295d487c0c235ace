package iterate

import (
	"fmt"

	"github.com/korifey/grapht/status"
)

// ErrExhausted is returned by Next once HasNext has reported false.
var ErrExhausted = fmt.Errorf("iterate: iterator exhausted: %w", status.ErrNoSuchElement)

// Iterator is a single-consumer cursor over a lazily produced sequence.
type Iterator[T any] interface {
	// HasNext reports whether another element is available. It may perform
	// work (advancing a search) but must be idempotent between Next calls.
	HasNext() bool

	// Next returns the next element, or ErrExhausted when none remain.
	// Lazy iterators may surface other errors (timeout, concurrent mutation).
	Next() (T, error)
}

// sliceIterator walks a fixed slice. Used for snapshot sequences.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

// FromSlice returns an iterator over items in order. The slice is not copied;
// callers hand over ownership.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

// Empty returns an iterator that is exhausted from the start.
func Empty[T any]() Iterator[T] { return &sliceIterator[T]{} }

func (it *sliceIterator[T]) HasNext() bool { return it.pos < len(it.items) }

func (it *sliceIterator[T]) Next() (T, error) {
	var zero T
	if it.pos >= len(it.items) {
		return zero, ErrExhausted
	}
	v := it.items[it.pos]
	it.pos++

	return v, nil
}

// funcIterator pulls elements from a generator function. The generator
// returns (element, true, nil) to yield, (zero, false, nil) on exhaustion,
// and (zero, false, err) to fail the iteration.
type funcIterator[T any] struct {
	produce func() (T, bool, error)
	peeked  bool
	head    T
	err     error
	done    bool
}

// FromFunc wraps a pull generator in the iterator protocol. HasNext invokes
// the generator at most once per element and memoizes the lookahead.
func FromFunc[T any](produce func() (T, bool, error)) Iterator[T] {
	return &funcIterator[T]{produce: produce}
}

func (it *funcIterator[T]) HasNext() bool {
	if it.done || it.err != nil {
		return false
	}
	if it.peeked {
		return true
	}
	v, ok, err := it.produce()
	if err != nil {
		it.err = err
		// Keep the error for the following Next call; the element is lost.
		return true
	}
	if !ok {
		it.done = true
		return false
	}
	it.head, it.peeked = v, true

	return true
}

func (it *funcIterator[T]) Next() (T, error) {
	var zero T
	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}
	if !it.HasNext() {
		return zero, ErrExhausted
	}
	if it.err != nil { // HasNext may have tripped the generator
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}
	it.peeked = false

	return it.head, nil
}

// Collect drains it into a slice. Stops at the first error.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}

	return out, nil
}
