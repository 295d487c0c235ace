// Package handles implements the opaque handle registry binding process-unique
// identifiers to live engine objects (graphs, iterators, containers, results).
//
// A Handle packs a slot index and a generation counter; releasing a slot bumps
// its generation, so a stale or double-released handle can never resolve again.
// Nothing is garbage collected: every registered object must be released by its
// owner, and Len lets tests balance register/release counts to prove
// leak-freedom.
//
// The registry is the one place in the engine guarded by a lock. The mutex
// covers only the slot table; it is never held across algorithm execution.
package handles

import (
	"fmt"
	"sync"

	"github.com/korifey/grapht/status"
)

// ErrInvalidHandle is returned by Resolve and Release for unknown, stale, or
// already-released handles.
var ErrInvalidHandle = fmt.Errorf("handles: %w", status.ErrInvalidHandle)

// ErrNilObject is returned by Register when given a nil object.
var ErrNilObject = fmt.Errorf("handles: cannot register nil: %w", status.ErrNilPointer)

// Handle is an opaque identifier bound 1:1 to exactly one live object.
// The zero Handle is never valid.
type Handle uint64

const genBits = 24

// slot holds one registered object plus the generation that must match for a
// handle to resolve. live distinguishes an occupied slot from a freed one.
type slot struct {
	obj  any
	gen  uint64
	live bool
}

// Registry maps handles to live objects. Construct one per engine instance;
// there is no package-level registry.
type Registry struct {
	mu    sync.Mutex
	slots []slot
	free  []int // indices of released slots available for reuse
	count int   // live objects
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// pack combines a slot index and generation into a Handle. Index 0 is shifted
// by one so the zero Handle stays invalid.
func pack(idx int, gen uint64) Handle {
	return Handle(uint64(idx+1)<<genBits | gen&(1<<genBits-1))
}

func unpack(h Handle) (idx int, gen uint64) {
	return int(uint64(h)>>genBits) - 1, uint64(h) & (1<<genBits - 1)
}

// Register stores obj and returns a fresh handle. O(1). A live handle is never
// reused: released slots come back with a bumped generation.
func (r *Registry) Register(obj any) (Handle, error) {
	if obj == nil {
		return 0, ErrNilObject
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		idx = len(r.slots) - 1
	}
	s := &r.slots[idx]
	s.obj = obj
	s.live = true
	r.count++

	return pack(idx, s.gen), nil
}

// Resolve returns the object bound to h, or ErrInvalidHandle if h is unknown,
// stale, or released. O(1).
func (r *Registry) Resolve(h Handle) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}

	return s.obj, nil
}

// Release destroys the binding for h. Releasing an already-released handle
// fails with ErrInvalidHandle rather than silently succeeding, so double-free
// bugs surface at the first offending call. O(1).
func (r *Registry) Release(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, _ := unpack(h)
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	s.obj = nil
	s.live = false
	s.gen++
	r.count--
	r.free = append(r.free, idx)

	return nil
}

// Len reports the number of live objects. Tests use it to balance
// register/release counts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// lookup validates h against the slot table. Caller holds r.mu.
func (r *Registry) lookup(h Handle) (*slot, error) {
	idx, gen := unpack(h)
	if idx < 0 || idx >= len(r.slots) {
		return nil, fmt.Errorf("handles: unknown handle %#x: %w", uint64(h), status.ErrInvalidHandle)
	}
	s := &r.slots[idx]
	if !s.live || s.gen != gen {
		return nil, fmt.Errorf("handles: stale or released handle %#x: %w", uint64(h), status.ErrInvalidHandle)
	}

	return s, nil
}

// As resolves h and asserts the bound object is a T. A live handle of the
// wrong kind fails with a ClassCast error, distinct from ErrInvalidHandle.
func As[T any](r *Registry, h Handle) (T, error) {
	var zero T
	obj, err := r.Resolve(h)
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("handles: handle %#x holds %T, not %T: %w", uint64(h), obj, zero, status.ErrClassCast)
	}

	return v, nil
}
