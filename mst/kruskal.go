package mst

import (
	"sort"

	"github.com/korifey/grapht/core"
)

// Kruskal computes a minimum spanning forest by scanning edges in ascending
// weight order and keeping every edge that merges two union-find
// components. Complexity: O(E log E).
func Kruskal(g core.Graph) (*SpanningTree, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}
	edges, err := collectTreeEdges(g)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	uf := NewUnionFind()
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		uf.Add(v)
	}

	var picked []treeEdge
	for _, e := range edges {
		if uf.Union(e.u, e.v) {
			picked = append(picked, e)
		}
	}

	return finishTree(picked), nil
}
