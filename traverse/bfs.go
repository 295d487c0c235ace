// Breadth-first and depth-first iterators. Both expand neighbors in
// ascending edge-id order, so visitation is deterministic for a fixed graph.
package traverse

import (
	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
)

// bfsIterator yields vertices in breadth-first order from one or more roots.
type bfsIterator struct {
	g       core.Graph
	snap    snapshot
	queue   []int64
	visited map[int64]struct{}
	roots   []int64 // remaining fallback roots for from-all traversal
}

// BFSFrom returns a breadth-first iterator rooted at start.
// Complexity: O(V + E) over a full drain.
func BFSFrom(g core.Graph, start int64) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	return &bfsIterator{
		g:       g,
		snap:    snap(g),
		queue:   []int64{start},
		visited: map[int64]struct{}{start: {}},
	}, nil
}

// BFSFromAll returns a breadth-first iterator covering every component,
// restarting from the smallest unvisited vertex id.
func BFSFromAll(g core.Graph) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	roots, err := collectVertices(g)
	if err != nil {
		return nil, err
	}

	return &bfsIterator{
		g:       g,
		snap:    snap(g),
		visited: make(map[int64]struct{}),
		roots:   roots,
	}, nil
}

func (it *bfsIterator) HasNext() bool {
	it.refill()
	return len(it.queue) > 0
}

// refill promotes the next unvisited root when the queue drains.
func (it *bfsIterator) refill() {
	for len(it.queue) == 0 && len(it.roots) > 0 {
		r := it.roots[0]
		it.roots = it.roots[1:]
		if _, ok := it.visited[r]; !ok {
			it.visited[r] = struct{}{}
			it.queue = append(it.queue, r)
		}
	}
}

func (it *bfsIterator) Next() (int64, error) {
	if it.snap.changed(it.g) {
		return 0, core.ErrConcurrentMutation
	}
	it.refill()
	if len(it.queue) == 0 {
		return 0, iterate.ErrExhausted
	}
	v := it.queue[0]
	it.queue = it.queue[1:]

	next, err := successors(it.g, v)
	if err != nil {
		return 0, err
	}
	for _, n := range next {
		if _, ok := it.visited[n]; !ok {
			it.visited[n] = struct{}{}
			it.queue = append(it.queue, n)
		}
	}

	return v, nil
}

// dfsIterator yields vertices in depth-first preorder.
type dfsIterator struct {
	g       core.Graph
	snap    snapshot
	stack   []int64
	visited map[int64]struct{}
	roots   []int64
}

// DFSFrom returns a depth-first iterator rooted at start.
// Complexity: O(V + E) over a full drain.
func DFSFrom(g core.Graph, start int64) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	return &dfsIterator{
		g:       g,
		snap:    snap(g),
		stack:   []int64{start},
		visited: make(map[int64]struct{}),
	}, nil
}

// DFSFromAll returns a depth-first iterator covering every component.
func DFSFromAll(g core.Graph) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	roots, err := collectVertices(g)
	if err != nil {
		return nil, err
	}

	return &dfsIterator{
		g:       g,
		snap:    snap(g),
		visited: make(map[int64]struct{}),
		roots:   roots,
	}, nil
}

func (it *dfsIterator) HasNext() bool {
	it.skipVisited()
	return len(it.stack) > 0
}

// skipVisited pops stack entries already emitted and promotes roots.
func (it *dfsIterator) skipVisited() {
	for {
		for n := len(it.stack); n > 0; n = len(it.stack) {
			if _, ok := it.visited[it.stack[n-1]]; !ok {
				return
			}
			it.stack = it.stack[:n-1]
		}
		if len(it.roots) == 0 {
			return
		}
		r := it.roots[0]
		it.roots = it.roots[1:]
		if _, ok := it.visited[r]; !ok {
			it.stack = append(it.stack, r)
			return
		}
	}
}

func (it *dfsIterator) Next() (int64, error) {
	if it.snap.changed(it.g) {
		return 0, core.ErrConcurrentMutation
	}
	it.skipVisited()
	n := len(it.stack)
	if n == 0 {
		return 0, iterate.ErrExhausted
	}
	v := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.visited[v] = struct{}{}

	next, err := successors(it.g, v)
	if err != nil {
		return 0, err
	}
	// Push in reverse so the lowest edge id is explored first.
	for i := len(next) - 1; i >= 0; i-- {
		if _, ok := it.visited[next[i]]; !ok {
			it.stack = append(it.stack, next[i])
		}
	}

	return v, nil
}
