// Package mst computes minimum spanning trees of undirected graphs with
// Kruskal's and Prim's algorithms.
//
// Both entry points accept weighted and unweighted graphs (unweighted edges
// cost core.DefaultEdgeWeight) and reject directed ones. On a disconnected
// graph the result is the minimum spanning forest: one tree per connected
// component. Ties between equal-weight edges break toward the lower edge
// id, so results are deterministic.
//
// The UnionFind structure backing Kruskal is exported for reuse; the
// connectivity package builds its k-spanning-tree clustering on it.
package mst
