package flow

import (
	"fmt"
	"math"
	"sort"

	"github.com/korifey/grapht/core"
)

// netArc is one direction of a residual arc pair. Arc i and its reverse
// arc i^1 are always adjacent in the arc slice.
type netArc struct {
	to  int
	cap float64
}

// network is the compact residual network: vertices reindexed to 0..n-1,
// arcs paired forward/reverse.
type network struct {
	verts []int64
	index map[int64]int
	arcs  []netArc
	adj   [][]int

	// fwdArc locates the source-to-target arc of each carrying edge;
	// edgeCap remembers its original capacity for flow extraction.
	fwdArc  map[int64]int
	edgeCap map[int64]float64
}

func (n *network) addVertex(id int64) int {
	i, ok := n.index[id]
	if ok {
		return i
	}
	i = len(n.verts)
	n.index[id] = i
	n.verts = append(n.verts, id)
	n.adj = append(n.adj, nil)

	return i
}

func (n *network) addArcPair(u, v int, capFwd, capRev float64) int {
	i := len(n.arcs)
	n.arcs = append(n.arcs, netArc{to: v, cap: capFwd}, netArc{to: u, cap: capRev})
	n.adj[u] = append(n.adj[u], i)
	n.adj[v] = append(n.adj[v], i+1)

	return i
}

// buildNetwork flattens the graph into residual arcs. Directed edges get a
// zero-capacity reverse arc; undirected edges carry full capacity both
// ways. Self-loops and sub-epsilon capacities are recorded as zero-flow
// edges without arcs.
func buildNetwork(g core.Graph, o options) (*network, map[int64]float64, error) {
	directed := g.Type().Directed
	net := &network{
		index:   make(map[int64]int),
		fwdArc:  make(map[int64]int),
		edgeCap: make(map[int64]float64),
	}
	flowByEdge := make(map[int64]float64)

	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return nil, nil, err
		}
		s, err := g.EdgeSource(e)
		if err != nil {
			return nil, nil, err
		}
		t, err := g.EdgeTarget(e)
		if err != nil {
			return nil, nil, err
		}
		w, err := g.EdgeWeight(e)
		if err != nil {
			return nil, nil, err
		}
		if w < -o.epsilon {
			return nil, nil, fmt.Errorf("edge %d: capacity %g: %w", e, w, ErrNegativeCapacity)
		}
		flowByEdge[e] = 0
		if s == t || w <= o.epsilon {
			continue
		}
		u, v := net.addVertex(s), net.addVertex(t)
		capRev := 0.0
		if !directed {
			capRev = w
		}
		net.fwdArc[e] = net.addArcPair(u, v, w, capRev)
		net.edgeCap[e] = w
	}

	return net, flowByEdge, nil
}

// Dinic computes the maximum flow from source to sink via repeated
// level-graph construction and blocking-flow pushes. Edge weights are
// capacities; ErrNegativeCapacity rejects negative ones. The run aborts
// with the context error when the WithContext context is cancelled.
// Complexity: O(V^2 * E) in general, O(E * sqrt(V)) on unit networks.
func Dinic(g core.Graph, source, sink int64, opts ...Option) (*MaxFlow, error) {
	o := newOptions(opts...)
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.ContainsVertex(source) {
		return nil, fmt.Errorf("vertex %d: %w", source, ErrSourceNotFound)
	}
	if !g.ContainsVertex(sink) {
		return nil, fmt.Errorf("vertex %d: %w", sink, ErrSinkNotFound)
	}
	if source == sink {
		return nil, ErrSourceEqualsSink
	}

	net, flowByEdge, err := buildNetwork(g, o)
	if err != nil {
		return nil, err
	}

	value := 0.0
	si, srcOK := net.index[source]
	ti, sinkOK := net.index[sink]
	if srcOK && sinkOK {
		level := make([]int, len(net.verts))
		iter := make([]int, len(net.verts))
		for {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
			if !net.bfsLevels(si, ti, level, o.epsilon) {
				break
			}
			for i := range iter {
				iter[i] = 0
			}
			for {
				pushed := net.push(si, ti, math.Inf(1), level, iter, o.epsilon)
				if pushed <= 0 {
					break
				}
				value += pushed
			}
		}
	}

	for e, i := range net.fwdArc {
		flowByEdge[e] = net.edgeCap[e] - net.arcs[i].cap
	}

	mf := &MaxFlow{
		source: source,
		sink:   sink,
		value:  value,
		flow:   flowByEdge,
	}
	mf.sourceSide, mf.cutEdges, err = net.minCut(g, source, o.epsilon)
	if err != nil {
		return nil, err
	}

	return mf, nil
}

// MinCut is the cut-centric view of Dinic: the cut weight equals the max
// flow and the returned edges are the saturated crossing edges.
func MinCut(g core.Graph, source, sink int64, opts ...Option) (float64, []int64, error) {
	mf, err := Dinic(g, source, sink, opts...)
	if err != nil {
		return 0, nil, err
	}

	return mf.Value(), mf.MinCutEdges(), nil
}

// bfsLevels rebuilds the level graph; reports whether the sink is still
// reachable through positive residuals.
func (n *network) bfsLevels(src, sink int, level []int, eps float64) bool {
	for i := range level {
		level[i] = -1
	}
	level[src] = 0
	queue := []int{src}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ai := range n.adj[u] {
			a := n.arcs[ai]
			if a.cap > eps && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[sink] >= 0
}

// push sends one augmenting unit of blocking flow along the level graph,
// advancing the per-vertex arc cursor so dead branches are never rescanned.
func (n *network) push(u, sink int, available float64, level, iter []int, eps float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(n.adj[u]); iter[u]++ {
		ai := n.adj[u][iter[u]]
		a := &n.arcs[ai]
		if a.cap <= eps || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		pushed := n.push(a.to, sink, send, level, iter, eps)
		if pushed > 0 {
			a.cap -= pushed
			n.arcs[ai^1].cap += pushed

			return pushed
		}
	}

	return 0
}

// minCut derives the source partition from residual reachability and
// collects the crossing edges.
func (n *network) minCut(g core.Graph, source int64, eps float64) (map[int64]struct{}, []int64, error) {
	side := make(map[int64]struct{})
	side[source] = struct{}{}
	if si, ok := n.index[source]; ok {
		seen := make([]bool, len(n.verts))
		seen[si] = true
		queue := []int{si}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, ai := range n.adj[u] {
				a := n.arcs[ai]
				if a.cap > eps && !seen[a.to] {
					seen[a.to] = true
					side[n.verts[a.to]] = struct{}{}
					queue = append(queue, a.to)
				}
			}
		}
	}

	directed := g.Type().Directed
	var cut []int64
	for e := range n.fwdArc {
		s, err := g.EdgeSource(e)
		if err != nil {
			return nil, nil, err
		}
		t, err := g.EdgeTarget(e)
		if err != nil {
			return nil, nil, err
		}
		_, sIn := side[s]
		_, tIn := side[t]
		switch {
		case directed && sIn && !tIn:
			cut = append(cut, e)
		case !directed && sIn != tIn:
			cut = append(cut, e)
		}
	}
	sortInt64s(cut)

	return side, cut, nil
}

func sortInt64s(a []int64) {
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
}
