package cycles

import (
	"sort"

	"github.com/korifey/grapht/core"
)

// FundamentalCycleBasis computes a fundamental cycle basis of an undirected
// graph with Paton's method: a BFS spanning forest plus one cycle per
// non-tree edge. Self-loops and parallel edges contribute length-1 and
// length-2 cycles. The basis has E - V + C cycles for C components.
// Complexity: O(V * E) worst case for the ancestor walks.
func FundamentalCycleBasis(g core.Graph) ([]*Circuit, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.Type().Directed {
		return nil, ErrDirectedGraph
	}

	type arc struct{ edge, to int64 }
	adj := make(map[int64][]arc)
	var vertices []int64
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}

	type flatEdge struct{ id, u, v int64 }
	var edges []flatEdge
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
		edges = append(edges, flatEdge{id: e, u: u, v: v})
		if u != v {
			adj[u] = append(adj[u], arc{edge: e, to: v})
			adj[v] = append(adj[v], arc{edge: e, to: u})
		}
	}
	for v := range adj {
		arcs := adj[v]
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].edge < arcs[j].edge })
	}

	// BFS spanning forest with parent links and depths.
	parentV := make(map[int64]int64)
	parentE := make(map[int64]int64)
	depth := make(map[int64]int)
	treeEdge := make(map[int64]struct{})
	visited := make(map[int64]struct{})
	for _, root := range vertices {
		if _, ok := visited[root]; ok {
			continue
		}
		visited[root] = struct{}{}
		depth[root] = 0
		queue := []int64{root}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, a := range adj[u] {
				if _, ok := visited[a.to]; ok {
					continue
				}
				visited[a.to] = struct{}{}
				parentV[a.to] = u
				parentE[a.to] = a.edge
				depth[a.to] = depth[u] + 1
				treeEdge[a.edge] = struct{}{}
				queue = append(queue, a.to)
			}
		}
	}

	var basis []*Circuit
	for _, e := range edges {
		if _, tree := treeEdge[e.id]; tree {
			continue
		}
		if e.u == e.v {
			basis = append(basis, &Circuit{vertices: []int64{e.u, e.u}, edges: []int64{e.id}})

			continue
		}

		// Walk both endpoints to their lowest common ancestor, recording
		// the vertices and tree edges passed.
		var upU, upV []int64
		var eU, eV []int64
		cu, cv := e.u, e.v
		for depth[cu] > depth[cv] {
			upU = append(upU, cu)
			eU = append(eU, parentE[cu])
			cu = parentV[cu]
		}
		for depth[cv] > depth[cu] {
			upV = append(upV, cv)
			eV = append(eV, parentE[cv])
			cv = parentV[cv]
		}
		for cu != cv {
			upU = append(upU, cu)
			eU = append(eU, parentE[cu])
			cu = parentV[cu]
			upV = append(upV, cv)
			eV = append(eV, parentE[cv])
			cv = parentV[cv]
		}

		// Assemble u -> lca -> v -> (closing edge) -> u.
		c := &Circuit{}
		c.vertices = append(c.vertices, upU...)
		c.vertices = append(c.vertices, cu)
		for i := len(upV) - 1; i >= 0; i-- {
			c.vertices = append(c.vertices, upV[i])
		}
		c.vertices = append(c.vertices, e.u)
		c.edges = append(c.edges, eU...)
		for i := len(eV) - 1; i >= 0; i-- {
			c.edges = append(c.edges, eV[i])
		}
		c.edges = append(c.edges, e.id)
		basis = append(basis, c)
	}

	return basis, nil
}
