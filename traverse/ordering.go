// Eagerly computed ordering iterators: topological order, degeneracy
// ordering, lexicographic BFS, and maximum cardinality search.
package traverse

import (
	"container/heap"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
)

// Topological returns the vertices of a directed acyclic graph in a
// topological order (Kahn's algorithm, smallest id first among ready
// vertices). Fails with ErrCyclicGraph when a cycle exists and ErrNotDirected
// on undirected graphs. Complexity: O(V log V + E).
func Topological(g core.Graph) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Type().Directed {
		return nil, ErrNotDirected
	}
	vertices, err := collectVertices(g)
	if err != nil {
		return nil, err
	}
	indeg := make(map[int64]int, len(vertices))
	for _, v := range vertices {
		d, err := g.InDegreeOf(v)
		if err != nil {
			return nil, err
		}
		indeg[v] = d
	}

	ready := &int64Heap{}
	for _, v := range vertices {
		if indeg[v] == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]int64, 0, len(vertices))
	for ready.Len() > 0 {
		v := heap.Pop(ready).(int64)
		order = append(order, v)
		next, err := successors(g, v)
		if err != nil {
			return nil, err
		}
		for _, n := range next {
			indeg[n]--
			if indeg[n] == 0 {
				heap.Push(ready, n)
			}
		}
	}
	if len(order) != len(vertices) {
		return nil, ErrCyclicGraph
	}

	return iterate.FromSlice(order), nil
}

// DegeneracyOrdering returns the vertices in a degeneracy ordering: each step
// removes a vertex of minimum remaining degree (smallest id breaks ties).
// The ordering minimizes the maximum back-degree and drives the degeneracy
// variants of coloring and clique enumeration. Complexity: O((V + E) log V).
func DegeneracyOrdering(g core.Graph) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	vertices, err := collectVertices(g)
	if err != nil {
		return nil, err
	}
	adj := make(map[int64]map[int64]int, len(vertices)) // neighbor -> multiplicity
	deg := make(map[int64]int, len(vertices))
	for _, v := range vertices {
		adj[v] = make(map[int64]int)
	}
	edges := g.Edges()
	for edges.HasNext() {
		e, err := edges.Next()
		if err != nil {
			return nil, err
		}
		s, _ := g.EdgeSource(e)
		t, _ := g.EdgeTarget(e)
		if s == t {
			continue // loops do not affect degeneracy
		}
		adj[s][t]++
		adj[t][s]++
		deg[s]++
		deg[t]++
	}

	// Lazy-deletion heap keyed by (degree, id).
	h := &degHeap{}
	for _, v := range vertices {
		heap.Push(h, degEntry{v: v, deg: deg[v]})
	}
	removed := make(map[int64]struct{}, len(vertices))
	order := make([]int64, 0, len(vertices))
	for h.Len() > 0 {
		top := heap.Pop(h).(degEntry)
		if _, gone := removed[top.v]; gone || top.deg != deg[top.v] {
			continue // stale entry
		}
		removed[top.v] = struct{}{}
		order = append(order, top.v)
		for n, mult := range adj[top.v] {
			if _, gone := removed[n]; gone {
				continue
			}
			deg[n] -= mult
			heap.Push(h, degEntry{v: n, deg: deg[n]})
		}
	}

	return iterate.FromSlice(order), nil
}

// LexBFS returns the vertices in a lexicographic breadth-first order using
// partition refinement. On chordal graphs the reverse order is a perfect
// elimination ordering. Complexity: O(V + E) amortized, O(V^2) worst case in
// this slice-based refinement.
func LexBFS(g core.Graph) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	vertices, err := collectVertices(g)
	if err != nil {
		return nil, err
	}
	neighbors := make(map[int64]map[int64]struct{}, len(vertices))
	for _, v := range vertices {
		next, err := allNeighbors(g, v)
		if err != nil {
			return nil, err
		}
		neighbors[v] = next
	}

	// Partition refinement over a list of cells; the head cell's first
	// vertex is visited next.
	cells := [][]int64{append([]int64(nil), vertices...)}
	order := make([]int64, 0, len(vertices))
	for len(cells) > 0 {
		head := cells[0]
		v := head[0]
		if len(head) == 1 {
			cells = cells[1:]
		} else {
			cells[0] = head[1:]
		}
		order = append(order, v)

		refined := make([][]int64, 0, len(cells)*2)
		for _, cell := range cells {
			var hit, miss []int64
			for _, u := range cell {
				if _, ok := neighbors[v][u]; ok {
					hit = append(hit, u)
				} else {
					miss = append(miss, u)
				}
			}
			if len(hit) > 0 {
				refined = append(refined, hit)
			}
			if len(miss) > 0 {
				refined = append(refined, miss)
			}
		}
		cells = refined
	}

	return iterate.FromSlice(order), nil
}

// MaxCardinality returns the vertices in a maximum cardinality search order:
// each step visits the vertex with the most already-visited neighbors
// (smallest id breaks ties). Complexity: O(V^2) with the direct scan.
func MaxCardinality(g core.Graph) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	vertices, err := collectVertices(g)
	if err != nil {
		return nil, err
	}
	neighbors := make(map[int64]map[int64]struct{}, len(vertices))
	for _, v := range vertices {
		next, err := allNeighbors(g, v)
		if err != nil {
			return nil, err
		}
		neighbors[v] = next
	}

	weight := make(map[int64]int, len(vertices))
	visited := make(map[int64]struct{}, len(vertices))
	order := make([]int64, 0, len(vertices))
	for len(order) < len(vertices) {
		best := int64(-1)
		for _, v := range vertices {
			if _, ok := visited[v]; ok {
				continue
			}
			if best < 0 || weight[v] > weight[best] {
				best = v
			}
		}
		visited[best] = struct{}{}
		order = append(order, best)
		for n := range neighbors[best] {
			if _, ok := visited[n]; !ok {
				weight[n]++
			}
		}
	}

	return iterate.FromSlice(order), nil
}

// allNeighbors returns the distinct neighbors of v across every incident
// edge, regardless of orientation.
func allNeighbors(g core.Graph, v int64) (map[int64]struct{}, error) {
	it, err := g.EdgesOf(v)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]struct{})
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return nil, err
		}
		s, _ := g.EdgeSource(e)
		t, _ := g.EdgeTarget(e)
		if s != v {
			out[s] = struct{}{}
		}
		if t != v {
			out[t] = struct{}{}
		}
	}

	return out, nil
}

// int64Heap is a min-heap of vertex ids.
type int64Heap []int64

func (h int64Heap) Len() int            { return len(h) }
func (h int64Heap) Less(i, j int) bool  { return h[i] < h[j] }
func (h int64Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *int64Heap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *int64Heap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// degEntry and degHeap implement the lazy-deletion (degree, id) min-heap.
type degEntry struct {
	v   int64
	deg int
}

type degHeap []degEntry

func (h degHeap) Len() int { return len(h) }
func (h degHeap) Less(i, j int) bool {
	if h[i].deg != h[j].deg {
		return h[i].deg < h[j].deg
	}

	return h[i].v < h[j].v
}
func (h degHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *degHeap) Push(x interface{}) { *h = append(*h, x.(degEntry)) }
func (h *degHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
