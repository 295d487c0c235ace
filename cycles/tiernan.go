package cycles

import (
	"sort"
	"time"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
)

// tiernanFrame is one suspended path extension: the vertex occupying this
// path position and the cursor into its successor list.
type tiernanFrame struct {
	v int64
	i int
}

// tiernanState is the resumable enumeration: paths grow only through
// vertices greater than the start, so each cycle is found exactly once,
// rooted at its smallest vertex.
type tiernanState struct {
	succ     map[int64][]int64
	order    []int64
	startPos int
	start    int64
	stack    []tiernanFrame
	inPath   map[int64]struct{}
	deadline time.Time
}

// SimpleCycles lazily enumerates the elementary cycles of a directed graph
// with Tiernan's path-extension search. Each cycle is emitted once as the
// vertex sequence starting from its smallest member; self-loops appear as
// single-vertex cycles. WithTimeout bounds the search, surfacing ErrTimeout
// from the iterator. Complexity: exponential in the cycle count.
func SimpleCycles(g core.Graph, opts ...Option) (iterate.Iterator[[]int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Type().Directed {
		return nil, ErrUndirectedGraph
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	st := &tiernanState{
		succ:   make(map[int64][]int64),
		inPath: make(map[int64]struct{}),
	}
	if o.timeout > 0 {
		st.deadline = time.Now().Add(o.timeout)
	}

	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		st.order = append(st.order, v)
	}
	eit := g.Edges()
	for eit.HasNext() {
		e, err := eit.Next()
		if err != nil {
			return nil, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, err
		}
		st.succ[u] = append(st.succ[u], v)
	}
	for v := range st.succ {
		s := st.succ[v]
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	}

	return iterate.FromFunc(st.produce), nil
}

// produce resumes the search until the next cycle, exhaustion or the
// deadline.
func (st *tiernanState) produce() ([]int64, bool, error) {
	for {
		if !st.deadline.IsZero() && time.Now().After(st.deadline) {
			return nil, false, ErrTimeout
		}

		if len(st.stack) == 0 {
			if st.startPos >= len(st.order) {
				return nil, false, nil
			}
			st.start = st.order[st.startPos]
			st.startPos++
			st.stack = append(st.stack, tiernanFrame{v: st.start})
			st.inPath = map[int64]struct{}{st.start: {}}

			continue
		}

		f := &st.stack[len(st.stack)-1]
		succ := st.succ[f.v]
		advanced := false
		for f.i < len(succ) {
			n := succ[f.i]
			f.i++
			if n == st.start {
				// Closing edge back to the root: the current path is a
				// cycle. Duplicate successors (parallel edges) each count.
				cycle := make([]int64, len(st.stack))
				for i, fr := range st.stack {
					cycle[i] = fr.v
				}

				return cycle, true, nil
			}
			if n < st.start {
				continue // cycles through n are rooted at n instead
			}
			if _, ok := st.inPath[n]; ok {
				continue
			}
			st.stack = append(st.stack, tiernanFrame{v: n})
			st.inPath[n] = struct{}{}
			advanced = true

			break
		}
		if !advanced && f.i >= len(succ) {
			delete(st.inPath, f.v)
			st.stack = st.stack[:len(st.stack)-1]
		}
	}
}
