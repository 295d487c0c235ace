// Package grapht is an in-memory graph engine: a mutable graph store
// with policy flags fixed at creation, lazy by-reference views, and a
// broad algorithm surface behind explicit lazy iterators.
//
// What lives where:
//
//	core         graph store, policy options, by-reference views
//	iterate      two-method iterator protocol and adapters
//	handles      generational handle registry for foreign callers
//	collect      handle-backed list, set and map wrappers
//	traverse     BFS, DFS, topological and degeneracy orderings
//	sp           Dijkstra, Bellman-Ford, A*, all-pairs shortest paths
//	flow         Dinic max-flow and minimum cuts
//	mst          Kruskal and Prim spanning trees, union-find
//	matching     greedy and path-growing matchings
//	coloring     greedy vertex coloring family
//	cliques      Bron-Kerbosch maximal clique enumeration
//	cycles       Eulerian circuits, cycle basis, Tiernan simple cycles
//	connectivity weak/strong components, clustering
//	isomorphism  VF2 (sub)graph isomorphism
//	properties   structural predicates and metrics
//	scoring      PageRank and centrality scores
//	generate     deterministic topology and random-model generators
//	tour         Hamiltonian tour construction and improvement
//	vertexcover  approximate and exact vertex covers
//	attrstore    typed attribute side-table and registry
//	status       closed error taxonomy and numeric status codes
//
// Algorithms never mutate their input graph, fail atomically, and leave
// synchronization to the caller.
package grapht
