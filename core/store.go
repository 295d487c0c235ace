// Store method implementations: vertex and edge lifecycle, weights, degrees.
//
// All operations validate before touching state, so a failing call never
// leaves a partial mutation behind. Adjacency is kept in per-vertex edge-id
// sets plus a pair index, giving constant-time membership checks.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex under the next unused identifier and returns it.
// Complexity: O(1) amortized.
func (g *Store) AddVertex() (int64, error) {
	v := g.nextVertexID
	g.nextVertexID++
	g.vertices[v] = struct{}{}
	g.out[v] = make(map[int64]struct{})
	g.in[v] = make(map[int64]struct{})
	g.version++

	return v, nil
}

// AddVertexWithID inserts the given identifier. Fails with ErrNegativeID for
// v < 0 and ErrDuplicateVertex if v is already present. Complexity: O(1).
func (g *Store) AddVertexWithID(v int64) error {
	if v < 0 {
		return fmt.Errorf("vertex %d: %w", v, ErrNegativeID)
	}
	if _, ok := g.vertices[v]; ok {
		return fmt.Errorf("vertex %d: %w", v, ErrDuplicateVertex)
	}
	g.vertices[v] = struct{}{}
	g.out[v] = make(map[int64]struct{})
	g.in[v] = make(map[int64]struct{})
	if v >= g.nextVertexID {
		g.nextVertexID = v + 1
	}
	g.version++

	return nil
}

// ContainsVertex reports whether v exists. Complexity: O(1).
func (g *Store) ContainsVertex(v int64) bool {
	_, ok := g.vertices[v]
	return ok
}

// RemoveVertex deletes v and every incident edge. Returns false without error
// when v is absent. Complexity: O(deg(v)).
func (g *Store) RemoveVertex(v int64) (bool, error) {
	if _, ok := g.vertices[v]; !ok {
		return false, nil
	}
	// Collect incident edge ids first: removeEdgeLocked edits the very sets
	// we would otherwise be ranging over.
	incident := make(map[int64]struct{}, len(g.out[v])+len(g.in[v]))
	for e := range g.out[v] {
		incident[e] = struct{}{}
	}
	for e := range g.in[v] {
		incident[e] = struct{}{}
	}
	for e := range incident {
		g.removeEdgeRec(e)
	}
	delete(g.vertices, v)
	delete(g.out, v)
	delete(g.in, v)
	g.version++

	return true, nil
}

// AddEdge connects u to v under the next unused edge id and returns it.
// Fails with ErrVertexNotFound if either endpoint is absent, and with the
// policy sentinels when loops or parallel edges are disabled. Complexity: O(1).
func (g *Store) AddEdge(u, v int64) (int64, error) {
	if err := g.checkNewEdge(u, v); err != nil {
		return 0, err
	}
	e := g.nextEdgeID
	g.nextEdgeID++
	g.insertEdge(e, u, v)

	return e, nil
}

// AddEdgeWithID connects u to v under a caller-chosen edge id.
// Complexity: O(1).
func (g *Store) AddEdgeWithID(u, v, e int64) error {
	if e < 0 {
		return fmt.Errorf("edge %d: %w", e, ErrNegativeID)
	}
	if _, ok := g.edges[e]; ok {
		return fmt.Errorf("edge %d: %w", e, ErrDuplicateEdge)
	}
	if err := g.checkNewEdge(u, v); err != nil {
		return err
	}
	g.insertEdge(e, u, v)
	if e >= g.nextEdgeID {
		g.nextEdgeID = e + 1
	}

	return nil
}

// checkNewEdge validates endpoints against existence and policy flags without
// mutating anything.
func (g *Store) checkNewEdge(u, v int64) error {
	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("source %d: %w", u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("target %d: %w", v, ErrVertexNotFound)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("edge %d->%d: %w", u, v, ErrSelfLoopNotAllowed)
	}
	if !g.allowMulti {
		if set, ok := g.pairs[g.pairKeyOf(u, v)]; ok && len(set) > 0 {
			return fmt.Errorf("edge %d->%d: %w", u, v, ErrMultiEdgeNotAllowed)
		}
	}

	return nil
}

// insertEdge records a validated edge in all three indices.
func (g *Store) insertEdge(e, u, v int64) {
	g.edges[e] = &edgeRec{source: u, target: v, weight: DefaultEdgeWeight}
	g.out[u][e] = struct{}{}
	g.in[v][e] = struct{}{}
	if !g.directed {
		g.out[v][e] = struct{}{}
		g.in[u][e] = struct{}{}
	}
	key := g.pairKeyOf(u, v)
	if g.pairs[key] == nil {
		g.pairs[key] = make(map[int64]struct{})
	}
	g.pairs[key][e] = struct{}{}
	g.version++
}

// ContainsEdge reports whether edge e exists. Complexity: O(1).
func (g *Store) ContainsEdge(e int64) bool {
	_, ok := g.edges[e]
	return ok
}

// ContainsEdgeBetween reports whether at least one edge connects u to v.
// Symmetric for undirected graphs. Complexity: O(1).
func (g *Store) ContainsEdgeBetween(u, v int64) bool {
	set, ok := g.pairs[g.pairKeyOf(u, v)]
	return ok && len(set) > 0
}

// RemoveEdge deletes edge e. Returns false without error when e is absent.
// Complexity: O(1).
func (g *Store) RemoveEdge(e int64) (bool, error) {
	if _, ok := g.edges[e]; !ok {
		return false, nil
	}
	g.removeEdgeRec(e)
	g.version++

	return true, nil
}

// removeEdgeRec unlinks e from all indices. Caller bumps version.
func (g *Store) removeEdgeRec(e int64) {
	rec := g.edges[e]
	delete(g.edges, e)
	delete(g.out[rec.source], e)
	delete(g.in[rec.target], e)
	if !g.directed {
		delete(g.out[rec.target], e)
		delete(g.in[rec.source], e)
	}
	key := g.pairKeyOf(rec.source, rec.target)
	if set := g.pairs[key]; set != nil {
		delete(set, e)
		if len(set) == 0 {
			delete(g.pairs, key)
		}
	}
}

// EdgeSource returns the source endpoint of e. Complexity: O(1).
func (g *Store) EdgeSource(e int64) (int64, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound)
	}

	return rec.source, nil
}

// EdgeTarget returns the target endpoint of e. Complexity: O(1).
func (g *Store) EdgeTarget(e int64) (int64, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound)
	}

	return rec.target, nil
}

// EdgeWeight returns the weight of e. Unweighted graphs always report
// DefaultEdgeWeight, whatever the stored record says. Complexity: O(1).
func (g *Store) EdgeWeight(e int64) (float64, error) {
	rec, ok := g.edges[e]
	if !ok {
		return 0, fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound)
	}
	if !g.weighted {
		return DefaultEdgeWeight, nil
	}

	return rec.weight, nil
}

// SetEdgeWeight assigns w to edge e. Fails with ErrUnweightedGraph when the
// graph was not constructed WithWeighted; the edge keeps reporting the
// default weight afterwards. Complexity: O(1).
func (g *Store) SetEdgeWeight(e int64, w float64) error {
	rec, ok := g.edges[e]
	if !ok {
		return fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound)
	}
	if !g.weighted {
		return ErrUnweightedGraph
	}
	rec.weight = w
	g.version++

	return nil
}

// DegreeOf returns the total degree of v; self-loops count twice by
// convention. Complexity: O(deg(v)) for undirected graphs (loop scan), O(1)
// otherwise.
func (g *Store) DegreeOf(v int64) (int, error) {
	if _, ok := g.vertices[v]; !ok {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	if g.directed {
		return len(g.out[v]) + len(g.in[v]), nil
	}
	// Undirected: each incident edge appears once in out[v]; loops must be
	// counted a second time.
	deg := len(g.out[v])
	for e := range g.out[v] {
		if rec := g.edges[e]; rec.source == rec.target {
			deg++
		}
	}

	return deg, nil
}

// InDegreeOf equals DegreeOf on undirected graphs. Complexity: as DegreeOf.
func (g *Store) InDegreeOf(v int64) (int, error) {
	if !g.directed {
		return g.DegreeOf(v)
	}
	if _, ok := g.vertices[v]; !ok {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}

	return len(g.in[v]), nil
}

// OutDegreeOf equals DegreeOf on undirected graphs. Complexity: as DegreeOf.
func (g *Store) OutDegreeOf(v int64) (int, error) {
	if !g.directed {
		return g.DegreeOf(v)
	}
	if _, ok := g.vertices[v]; !ok {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}

	return len(g.out[v]), nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Store) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Store) EdgeCount() int { return len(g.edges) }

// sortedIDs returns the keys of a set in ascending order, the deterministic
// ordering every iterator in the engine guarantees.
func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
