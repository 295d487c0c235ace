// Package core implements the mutable in-memory graph store at the heart of
// grapht: integer vertex and edge identifiers, adjacency indices tuned for
// O(1) structural queries, edge weights, and the four policy flags fixed at
// construction (directed, self-loops, multi-edges, weighted).
//
// Identifiers are non-negative int64 values. AddVertex allocates the next
// unused id; AddVertexWithID re-inserts a caller-chosen id. Ids of removed
// elements are not reused unless explicitly re-added.
//
// Concurrency: the store is NOT internally synchronized. One goroutine may
// mutate a graph at a time; callers needing concurrent reads must serialize
// mutations themselves. Iterators observe the store's modification counter
// and fail fast with ErrConcurrentMutation when the graph changes under them.
//
// Failure atomicity: every operation either fully succeeds or leaves the
// store exactly as it was. Validation happens before any state is touched.
//
// Views (AsUndirected, AsUnweighted, AsUnmodifiable, AsEdgeReversed) wrap a
// base graph by reference: they recompute direction, weight, or mutability
// per query without copying storage, so mutations to the base remain visible
// through the view.
package core
