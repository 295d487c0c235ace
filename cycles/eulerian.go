package cycles

import (
	"sort"

	"github.com/korifey/grapht/core"
)

// eulerArc is one traversable direction of an edge; parallel arcs of an
// undirected edge share its used flag through the edge id.
type eulerArc struct {
	edge, to int64
}

// EulerianCircuit finds a closed walk using every edge exactly once via
// Hierholzer's algorithm. The graph must have all degrees balanced (even
// degree undirected, in equals out directed) and all edges in one connected
// component; otherwise ErrNotEulerian. An edgeless graph yields the empty
// circuit. Complexity: O(V + E).
func EulerianCircuit(g core.Graph) (*Circuit, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.EdgeCount() == 0 {
		return &Circuit{}, nil
	}
	directed := g.Type().Directed

	adj := make(map[int64][]eulerArc)
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
		adj[u] = append(adj[u], eulerArc{edge: e, to: v})
		if !directed && u != v {
			adj[v] = append(adj[v], eulerArc{edge: e, to: u})
		}
	}
	for v := range adj {
		arcs := adj[v]
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].edge < arcs[j].edge })
	}

	// Degree balance.
	for _, v := range vertices {
		if directed {
			in, err := g.InDegreeOf(v)
			if err != nil {
				return nil, err
			}
			out, err := g.OutDegreeOf(v)
			if err != nil {
				return nil, err
			}
			if in != out {
				return nil, ErrNotEulerian
			}
		} else {
			d, err := g.DegreeOf(v)
			if err != nil {
				return nil, err
			}
			if d%2 != 0 {
				return nil, ErrNotEulerian
			}
		}
	}

	// All edges must share one component; walk the underlying undirected
	// adjacency from the lowest vertex carrying an edge.
	var start int64
	for _, v := range vertices {
		if len(adj[v]) > 0 {
			start = v
			break
		}
	}
	undirected := make(map[int64][]int64)
	for u, arcs := range adj {
		for _, a := range arcs {
			undirected[u] = append(undirected[u], a.to)
			undirected[a.to] = append(undirected[a.to], u)
		}
	}
	seen := map[int64]struct{}{start: {}}
	queue := []int64{start}
	for i := 0; i < len(queue); i++ {
		for _, n := range undirected[queue[i]] {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}
	for _, v := range vertices {
		deg, err := g.DegreeOf(v)
		if err != nil {
			return nil, err
		}
		if deg > 0 {
			if _, ok := seen[v]; !ok {
				return nil, ErrNotEulerian
			}
		}
	}

	// Hierholzer: walk greedily, backtrack when stuck, emit on pop.
	type step struct {
		v, via int64 // via is the arriving edge, -1 at the start
	}
	pos := make(map[int64]int, len(adj))
	used := make(map[int64]struct{}, g.EdgeCount())
	stack := []step{{v: start, via: -1}}
	var rev []step
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		arcs := adj[cur.v]
		i := pos[cur.v]
		for i < len(arcs) {
			if _, ok := used[arcs[i].edge]; !ok {
				break
			}
			i++
		}
		pos[cur.v] = i
		if i < len(arcs) {
			a := arcs[i]
			used[a.edge] = struct{}{}
			stack = append(stack, step{v: a.to, via: a.edge})

			continue
		}
		rev = append(rev, cur)
		stack = stack[:len(stack)-1]
	}
	if len(rev) != g.EdgeCount()+1 {
		return nil, ErrNotEulerian
	}

	c := &Circuit{
		vertices: make([]int64, 0, len(rev)),
		edges:    make([]int64, 0, len(rev)-1),
	}
	for i := len(rev) - 1; i >= 0; i-- {
		c.vertices = append(c.vertices, rev[i].v)
		if rev[i].via >= 0 {
			c.edges = append(c.edges, rev[i].via)
		}
	}

	return c, nil
}
