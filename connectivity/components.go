// Package connectivity labels graph components and computes simple
// clusterings: weakly connected components via BFS, strongly connected
// components via Tarjan's algorithm, label propagation and k-spanning-tree
// clustering.
package connectivity

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for component computation.
var (
	// ErrClusterIndex is returned by Component for an out-of-range index.
	ErrClusterIndex = fmt.Errorf("connectivity: cluster index out of range: %w", status.ErrIndexOutOfBounds)

	// ErrDirectedGraph is returned by clusterings defined on undirected
	// graphs.
	ErrDirectedGraph = fmt.Errorf("connectivity: clustering requires an undirected graph: %w", status.ErrUnsupportedOperation)

	// ErrInvalidK is returned by KSpanningTree when k is not in [1, V].
	ErrInvalidK = fmt.Errorf("connectivity: k must be between 1 and the vertex count: %w", status.ErrIllegalArgument)
)

// Components is an immutable partition of the vertex set. Clusters are
// ordered by their smallest member; members are ascending.
type Components struct {
	clusters [][]int64
	index    map[int64]int
}

// Count returns the number of clusters.
func (c *Components) Count() int { return len(c.clusters) }

// Component returns the members of cluster i.
func (c *Components) Component(i int) ([]int64, error) {
	if i < 0 || i >= len(c.clusters) {
		return nil, fmt.Errorf("cluster %d of %d: %w", i, len(c.clusters), ErrClusterIndex)
	}

	return append([]int64(nil), c.clusters[i]...), nil
}

// ComponentVertices iterates the members of cluster i.
func (c *Components) ComponentVertices(i int) (iterate.Iterator[int64], error) {
	members, err := c.Component(i)
	if err != nil {
		return nil, err
	}

	return iterate.FromSlice(members), nil
}

// ComponentOf returns the cluster index holding v.
func (c *Components) ComponentOf(v int64) (int, error) {
	i, ok := c.index[v]
	if !ok {
		return 0, fmt.Errorf("connectivity: vertex %d not in any cluster: %w", v, status.ErrIllegalArgument)
	}

	return i, nil
}

// SameComponent reports whether u and v share a cluster.
func (c *Components) SameComponent(u, v int64) bool {
	iu, uOK := c.index[u]
	iv, vOK := c.index[v]

	return uOK && vOK && iu == iv
}

// newComponents normalizes raw clusters: members sorted ascending, clusters
// ordered by smallest member.
func newComponents(raw [][]int64) *Components {
	c := &Components{clusters: raw, index: make(map[int64]int)}
	for i := range c.clusters {
		cl := c.clusters[i]
		sort.Slice(cl, func(a, b int) bool { return cl[a] < cl[b] })
	}
	sort.Slice(c.clusters, func(a, b int) bool {
		return c.clusters[a][0] < c.clusters[b][0]
	})
	for i, cl := range c.clusters {
		for _, v := range cl {
			c.index[v] = i
		}
	}

	return c
}

// undirectedAdjacency builds the loop-free symmetric neighbor map.
func undirectedAdjacency(g core.Graph) (map[int64][]int64, []int64, error) {
	adj := make(map[int64][]int64)
	var vertices []int64
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, nil, err
		}
		vertices = append(vertices, v)
	}
	eit := g.Edges()
	for eit.HasNext() {
		e, err := eit.Next()
		if err != nil {
			return nil, nil, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, nil, err
		}
		if u != v {
			adj[u] = append(adj[u], v)
			adj[v] = append(adj[v], u)
		}
	}

	return adj, vertices, nil
}

// WeakComponents partitions the vertex set into weakly connected
// components, ignoring edge direction. Complexity: O(V + E).
func WeakComponents(g core.Graph) (*Components, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	adj, vertices, err := undirectedAdjacency(g)
	if err != nil {
		return nil, err
	}

	visited := make(map[int64]struct{}, len(vertices))
	var raw [][]int64
	for _, root := range vertices {
		if _, ok := visited[root]; ok {
			continue
		}
		visited[root] = struct{}{}
		comp := []int64{root}
		queue := []int64{root}
		for i := 0; i < len(queue); i++ {
			for _, n := range adj[queue[i]] {
				if _, ok := visited[n]; !ok {
					visited[n] = struct{}{}
					comp = append(comp, n)
					queue = append(queue, n)
				}
			}
		}
		raw = append(raw, comp)
	}

	return newComponents(raw), nil
}

// StrongComponents partitions a graph into strongly connected components
// with Tarjan's single-pass algorithm (iterative). On undirected graphs it
// degenerates to WeakComponents. Complexity: O(V + E).
func StrongComponents(g core.Graph) (*Components, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Type().Directed {
		return WeakComponents(g)
	}

	succ := make(map[int64][]int64)
	var vertices []int64
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
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
		succ[u] = append(succ[u], v)
	}

	index := make(map[int64]int, len(vertices))
	low := make(map[int64]int, len(vertices))
	onStack := make(map[int64]struct{})
	var tarjanStack []int64
	var raw [][]int64
	next := 0

	type frame struct {
		v int64
		i int
	}
	for _, root := range vertices {
		if _, seen := index[root]; seen {
			continue
		}
		callStack := []frame{{v: root}}
		index[root], low[root] = next, next
		next++
		tarjanStack = append(tarjanStack, root)
		onStack[root] = struct{}{}

		for len(callStack) > 0 {
			f := &callStack[len(callStack)-1]
			if f.i < len(succ[f.v]) {
				w := succ[f.v][f.i]
				f.i++
				if _, seen := index[w]; !seen {
					index[w], low[w] = next, next
					next++
					tarjanStack = append(tarjanStack, w)
					onStack[w] = struct{}{}
					callStack = append(callStack, frame{v: w})
				} else if _, on := onStack[w]; on {
					if index[w] < low[f.v] {
						low[f.v] = index[w]
					}
				}

				continue
			}

			// Unwind: close the root of an SCC, propagate lowlink.
			if low[f.v] == index[f.v] {
				var comp []int64
				for {
					w := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					delete(onStack, w)
					comp = append(comp, w)
					if w == f.v {
						break
					}
				}
				raw = append(raw, comp)
			}
			v := f.v
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				p := &callStack[len(callStack)-1]
				if low[v] < low[p.v] {
					low[p.v] = low[v]
				}
			}
		}
	}

	return newComponents(raw), nil
}
