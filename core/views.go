// Graph views: read-only or policy-transformed projections sharing storage
// with their base graph. No view copies adjacency; direction, weight, and
// mutability are recomputed per query, so base mutations stay visible.
package core

import (
	"sort"

	"github.com/korifey/grapht/iterate"
)

// delegate forwards the full Graph surface to a base graph. Each view embeds
// it and overrides only the behavior it transforms.
type delegate struct{ base Graph }

func (d delegate) Type() GraphType                    { return d.base.Type() }
func (d delegate) AddVertex() (int64, error)          { return d.base.AddVertex() }
func (d delegate) AddVertexWithID(v int64) error      { return d.base.AddVertexWithID(v) }
func (d delegate) ContainsVertex(v int64) bool        { return d.base.ContainsVertex(v) }
func (d delegate) RemoveVertex(v int64) (bool, error) { return d.base.RemoveVertex(v) }
func (d delegate) AddEdge(u, v int64) (int64, error)  { return d.base.AddEdge(u, v) }
func (d delegate) AddEdgeWithID(u, v, e int64) error  { return d.base.AddEdgeWithID(u, v, e) }
func (d delegate) ContainsEdge(e int64) bool          { return d.base.ContainsEdge(e) }
func (d delegate) ContainsEdgeBetween(u, v int64) bool {
	return d.base.ContainsEdgeBetween(u, v)
}
func (d delegate) RemoveEdge(e int64) (bool, error)      { return d.base.RemoveEdge(e) }
func (d delegate) EdgeSource(e int64) (int64, error)     { return d.base.EdgeSource(e) }
func (d delegate) EdgeTarget(e int64) (int64, error)     { return d.base.EdgeTarget(e) }
func (d delegate) EdgeWeight(e int64) (float64, error)   { return d.base.EdgeWeight(e) }
func (d delegate) SetEdgeWeight(e int64, w float64) error {
	return d.base.SetEdgeWeight(e, w)
}
func (d delegate) DegreeOf(v int64) (int, error)    { return d.base.DegreeOf(v) }
func (d delegate) InDegreeOf(v int64) (int, error)  { return d.base.InDegreeOf(v) }
func (d delegate) OutDegreeOf(v int64) (int, error) { return d.base.OutDegreeOf(v) }
func (d delegate) VertexCount() int                 { return d.base.VertexCount() }
func (d delegate) EdgeCount() int                   { return d.base.EdgeCount() }
func (d delegate) Vertices() iterate.Iterator[int64] {
	return d.base.Vertices()
}
func (d delegate) Edges() iterate.Iterator[int64] { return d.base.Edges() }
func (d delegate) EdgesOf(v int64) (iterate.Iterator[int64], error) {
	return d.base.EdgesOf(v)
}
func (d delegate) IncomingEdgesOf(v int64) (iterate.Iterator[int64], error) {
	return d.base.IncomingEdgesOf(v)
}
func (d delegate) OutgoingEdgesOf(v int64) (iterate.Iterator[int64], error) {
	return d.base.OutgoingEdgesOf(v)
}
func (d delegate) EdgesBetween(u, v int64) iterate.Iterator[int64] {
	return d.base.EdgesBetween(u, v)
}

// unmodifiableView rejects every mutating operation while reflecting live
// reads of the base.
type unmodifiableView struct{ delegate }

// AsUnmodifiable returns a read-only projection of g. All mutators fail with
// ErrUnmodifiable; reads stay live against the base.
func AsUnmodifiable(g Graph) Graph { return &unmodifiableView{delegate{g}} }

func (v *unmodifiableView) Type() GraphType {
	t := v.base.Type()
	t.Modifiable = false

	return t
}
func (v *unmodifiableView) AddVertex() (int64, error)          { return 0, ErrUnmodifiable }
func (v *unmodifiableView) AddVertexWithID(int64) error        { return ErrUnmodifiable }
func (v *unmodifiableView) RemoveVertex(int64) (bool, error)   { return false, ErrUnmodifiable }
func (v *unmodifiableView) AddEdge(_, _ int64) (int64, error)  { return 0, ErrUnmodifiable }
func (v *unmodifiableView) AddEdgeWithID(_, _, _ int64) error  { return ErrUnmodifiable }
func (v *unmodifiableView) RemoveEdge(int64) (bool, error)     { return false, ErrUnmodifiable }
func (v *unmodifiableView) SetEdgeWeight(int64, float64) error { return ErrUnmodifiable }

// unweightedView projects every edge weight to DefaultEdgeWeight and rejects
// weight assignment. Structural mutations pass through to the base.
type unweightedView struct{ delegate }

// AsUnweighted returns a projection of g whose Type reports Weighted=false
// and whose edges all weigh DefaultEdgeWeight.
func AsUnweighted(g Graph) Graph { return &unweightedView{delegate{g}} }

func (v *unweightedView) Type() GraphType {
	t := v.base.Type()
	t.Weighted = false

	return t
}

func (v *unweightedView) EdgeWeight(e int64) (float64, error) {
	// Validate existence through the base, then mask the stored weight.
	if _, err := v.base.EdgeWeight(e); err != nil {
		return 0, err
	}

	return DefaultEdgeWeight, nil
}

func (v *unweightedView) SetEdgeWeight(int64, float64) error { return ErrUnweightedGraph }

// edgeReversedView swaps the orientation of every edge. Mutations pass
// through with endpoints swapped, so an edge added through the view reads
// back reversed from the view and forward from the base.
type edgeReversedView struct{ delegate }

// AsEdgeReversed returns a projection of g with all edges reversed.
func AsEdgeReversed(g Graph) Graph { return &edgeReversedView{delegate{g}} }

func (v *edgeReversedView) AddEdge(u, w int64) (int64, error) { return v.base.AddEdge(w, u) }
func (v *edgeReversedView) AddEdgeWithID(u, w, e int64) error { return v.base.AddEdgeWithID(w, u, e) }
func (v *edgeReversedView) ContainsEdgeBetween(u, w int64) bool {
	return v.base.ContainsEdgeBetween(w, u)
}
func (v *edgeReversedView) EdgeSource(e int64) (int64, error) { return v.base.EdgeTarget(e) }
func (v *edgeReversedView) EdgeTarget(e int64) (int64, error) { return v.base.EdgeSource(e) }
func (v *edgeReversedView) InDegreeOf(x int64) (int, error)   { return v.base.OutDegreeOf(x) }
func (v *edgeReversedView) OutDegreeOf(x int64) (int, error)  { return v.base.InDegreeOf(x) }
func (v *edgeReversedView) IncomingEdgesOf(x int64) (iterate.Iterator[int64], error) {
	return v.base.OutgoingEdgesOf(x)
}
func (v *edgeReversedView) OutgoingEdgesOf(x int64) (iterate.Iterator[int64], error) {
	return v.base.IncomingEdgesOf(x)
}
func (v *edgeReversedView) EdgesBetween(u, w int64) iterate.Iterator[int64] {
	return v.base.EdgesBetween(w, u)
}

// undirectedView reads a directed base as if every edge were undirected.
// Structural edge mutation through the view is ambiguous (which orientation?)
// and is rejected; vertex mutation and weight assignment pass through.
type undirectedView struct{ delegate }

// AsUndirected returns an undirected read-projection of g. For an already
// undirected graph the view is the identity with edge addition disabled.
func AsUndirected(g Graph) Graph { return &undirectedView{delegate{g}} }

func (v *undirectedView) Type() GraphType {
	t := v.base.Type()
	t.Directed = false

	return t
}

func (v *undirectedView) AddEdge(_, _ int64) (int64, error) { return 0, ErrViewMutation }
func (v *undirectedView) AddEdgeWithID(_, _, _ int64) error { return ErrViewMutation }

func (v *undirectedView) ContainsEdgeBetween(u, w int64) bool {
	return v.base.ContainsEdgeBetween(u, w) || v.base.ContainsEdgeBetween(w, u)
}

func (v *undirectedView) DegreeOf(x int64) (int, error) {
	in, err := v.base.InDegreeOf(x)
	if err != nil {
		return 0, err
	}
	out, err := v.base.OutDegreeOf(x)
	if err != nil {
		return 0, err
	}
	if !v.base.Type().Directed {
		return v.base.DegreeOf(x)
	}

	return in + out, nil
}

func (v *undirectedView) InDegreeOf(x int64) (int, error)  { return v.DegreeOf(x) }
func (v *undirectedView) OutDegreeOf(x int64) (int, error) { return v.DegreeOf(x) }

func (v *undirectedView) IncomingEdgesOf(x int64) (iterate.Iterator[int64], error) {
	return v.base.EdgesOf(x)
}

func (v *undirectedView) OutgoingEdgesOf(x int64) (iterate.Iterator[int64], error) {
	return v.base.EdgesOf(x)
}

func (v *undirectedView) EdgesBetween(u, w int64) iterate.Iterator[int64] {
	return mergeIDs(v.base.EdgesBetween(u, w), v.base.EdgesBetween(w, u))
}

// mergeIDs combines two id iterators into one deduplicated ascending
// sequence. Both inputs are freshly created snapshots, so draining them here
// cannot observe a concurrent mutation.
func mergeIDs(a, b iterate.Iterator[int64]) iterate.Iterator[int64] {
	seen := make(map[int64]struct{})
	for _, it := range []iterate.Iterator[int64]{a, b} {
		for it.HasNext() {
			id, err := it.Next()
			if err != nil {
				break
			}
			seen[id] = struct{}{}
		}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return iterate.FromSlice(ids)
}
