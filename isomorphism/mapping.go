// Package isomorphism tests graph isomorphism with a VF2-style backtracking
// search and lazily enumerates the witnessing mappings.
package isomorphism

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/status"
)

// ErrMixedDirectedness is returned when one graph is directed and the
// other is not.
var ErrMixedDirectedness = fmt.Errorf("isomorphism: graphs differ in directedness: %w", status.ErrIllegalArgument)

// Mapping is one isomorphism witness: a bidirectional vertex and edge
// correspondence between the first and second graph.
type Mapping struct {
	v12, v21 map[int64]int64
	e12, e21 map[int64]int64
}

// VertexCorrespondence maps a vertex across the isomorphism: forward takes
// a first-graph vertex to its second-graph image, backward the reverse.
// Unknown ids fail with a NoSuchElement kind.
func (m *Mapping) VertexCorrespondence(v int64, forward bool) (int64, error) {
	table := m.v12
	if !forward {
		table = m.v21
	}
	img, ok := table[v]
	if !ok {
		return 0, fmt.Errorf("isomorphism: vertex %d has no correspondence: %w", v, status.ErrNoSuchElement)
	}

	return img, nil
}

// EdgeCorrespondence maps an edge across the isomorphism, pairing parallel
// edges between corresponding endpoints in ascending id order.
func (m *Mapping) EdgeCorrespondence(e int64, forward bool) (int64, error) {
	table := m.e12
	if !forward {
		table = m.e21
	}
	img, ok := table[e]
	if !ok {
		return 0, fmt.Errorf("isomorphism: edge %d has no correspondence: %w", e, status.ErrNoSuchElement)
	}

	return img, nil
}

// Vertices returns a copy of the forward vertex table.
func (m *Mapping) Vertices() map[int64]int64 {
	out := make(map[int64]int64, len(m.v12))
	for k, v := range m.v12 {
		out[k] = v
	}

	return out
}

// pairKey identifies an endpoint pair; undirected pairs are normalized
// with the lower vertex first.
type pairKey struct{ a, b int64 }

func keyOf(u, v int64, directed bool) pairKey {
	if !directed && u > v {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// edgesByPair groups a graph's edge ids by endpoint pair, ascending within
// each group.
func edgesByPair(g core.Graph) (map[pairKey][]int64, error) {
	directed := g.Type().Directed
	out := make(map[pairKey][]int64)
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
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
		k := keyOf(u, v, directed)
		out[k] = append(out[k], e)
	}
	for k := range out {
		ids := out[k]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	return out, nil
}

// buildMapping completes a vertex assignment into a full Mapping by
// pairing off the edge groups it induces.
func buildMapping(v12 map[int64]int64, pairs1, pairs2 map[pairKey][]int64, directed bool) *Mapping {
	m := &Mapping{
		v12: make(map[int64]int64, len(v12)),
		v21: make(map[int64]int64, len(v12)),
		e12: make(map[int64]int64),
		e21: make(map[int64]int64),
	}
	for a, b := range v12 {
		m.v12[a] = b
		m.v21[b] = a
	}
	for k, ids1 := range pairs1 {
		ids2 := pairs2[keyOf(v12[k.a], v12[k.b], directed)]
		for i, e1 := range ids1 {
			m.e12[e1] = ids2[i]
			m.e21[ids2[i]] = e1
		}
	}

	return m
}
