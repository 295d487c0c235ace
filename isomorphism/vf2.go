package isomorphism

import (
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
)

// vertexProfile is the cheap invariant used to prune candidates.
type vertexProfile struct {
	in, out, loops int
}

// searchState is the resumable VF2 backtracking search. Vertices of the
// first graph are assigned in ascending order; each stack frame holds the
// candidate images still untried for its depth.
type searchState struct {
	order1   []int64
	profile1 map[int64]vertexProfile
	profile2 map[int64]vertexProfile
	mult1    map[pairKey]int
	mult2    map[pairKey]int
	all2     []int64
	directed bool

	pairs1, pairs2 map[pairKey][]int64

	v12, v21 map[int64]int64
	stack    []*searchFrame
	started  bool
	done     bool
}

type searchFrame struct {
	cands []int64
	i     int
}

// VF2 reports whether g1 and g2 are isomorphic and returns a lazy iterator
// over every isomorphism, each a bidirectional Mapping. Both graphs must
// share directedness. The exists flag is the first iterator pull performed
// eagerly; the iterator still yields that mapping.
// Complexity: exponential worst case, heavily pruned by degree profiles.
func VF2(g1, g2 core.Graph) (bool, iterate.Iterator[*Mapping], error) {
	if g1 == nil || g2 == nil {
		return false, nil, core.ErrNilGraph
	}
	if g1.Type().Directed != g2.Type().Directed {
		return false, nil, ErrMixedDirectedness
	}
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return false, iterate.Empty[*Mapping](), nil
	}

	st := &searchState{
		directed: g1.Type().Directed,
		v12:      make(map[int64]int64),
		v21:      make(map[int64]int64),
	}
	var err error
	if st.order1, st.profile1, st.mult1, err = profileGraph(g1); err != nil {
		return false, nil, err
	}
	if st.all2, st.profile2, st.mult2, err = profileGraph(g2); err != nil {
		return false, nil, err
	}
	if st.pairs1, err = edgesByPair(g1); err != nil {
		return false, nil, err
	}
	if st.pairs2, err = edgesByPair(g2); err != nil {
		return false, nil, err
	}

	it := iterate.FromFunc(st.produce)
	exists := it.HasNext()

	return exists, it, nil
}

// Isomorphic is the existence-only convenience wrapper.
func Isomorphic(g1, g2 core.Graph) (bool, error) {
	exists, _, err := VF2(g1, g2)

	return exists, err
}

// profileGraph collects the vertex order, degree profiles and endpoint
// multiplicities of a graph. Undirected profiles fold everything into out.
func profileGraph(g core.Graph) ([]int64, map[int64]vertexProfile, map[pairKey]int, error) {
	directed := g.Type().Directed
	var vertices []int64
	profiles := make(map[int64]vertexProfile)
	mult := make(map[pairKey]int)

	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, nil, nil, err
		}
		vertices = append(vertices, v)
		profiles[v] = vertexProfile{}
	}
	eit := g.Edges()
	for eit.HasNext() {
		e, err := eit.Next()
		if err != nil {
			return nil, nil, nil, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, nil, nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, nil, nil, err
		}
		mult[keyOf(u, v, directed)]++
		pu, pv := profiles[u], profiles[v]
		switch {
		case u == v:
			pu.loops++
			profiles[u] = pu
		case directed:
			pu.out++
			pv.in++
			profiles[u], profiles[v] = pu, pv
		default:
			pu.out++
			pv.out++
			profiles[u], profiles[v] = pu, pv
		}
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	return vertices, profiles, mult, nil
}

// candidates lists the unmapped second-graph vertices whose profile
// matches the next first-graph vertex.
func (st *searchState) candidates(v1 int64) []int64 {
	want := st.profile1[v1]
	var out []int64
	for _, v2 := range st.all2 {
		if _, taken := st.v21[v2]; taken {
			continue
		}
		if st.profile2[v2] == want {
			out = append(out, v2)
		}
	}

	return out
}

// feasible checks edge multiplicities between v1/v2 and every pair mapped
// so far, plus self-loops.
func (st *searchState) feasible(v1, v2 int64) bool {
	if st.mult1[keyOf(v1, v1, st.directed)] != st.mult2[keyOf(v2, v2, st.directed)] {
		return false
	}
	for u1, u2 := range st.v12 {
		if st.mult1[keyOf(v1, u1, st.directed)] != st.mult2[keyOf(v2, u2, st.directed)] {
			return false
		}
		if st.directed && st.mult1[keyOf(u1, v1, st.directed)] != st.mult2[keyOf(u2, v2, st.directed)] {
			return false
		}
	}

	return true
}

// produce resumes the backtracking search until the next complete mapping.
func (st *searchState) produce() (*Mapping, bool, error) {
	if st.done {
		return nil, false, nil
	}
	if !st.started {
		st.started = true
		if len(st.order1) == 0 {
			// Two empty graphs have exactly the empty isomorphism.
			st.done = true

			return buildMapping(st.v12, st.pairs1, st.pairs2, st.directed), true, nil
		}
		st.stack = append(st.stack, &searchFrame{cands: st.candidates(st.order1[0])})
	}

	for len(st.stack) > 0 {
		depth := len(st.stack) - 1
		f := st.stack[depth]
		v1 := st.order1[depth]

		// Unassign this depth's previous trial before the next one.
		if img, ok := st.v12[v1]; ok {
			delete(st.v12, v1)
			delete(st.v21, img)
		}

		advanced := false
		for f.i < len(f.cands) {
			v2 := f.cands[f.i]
			f.i++
			if !st.feasible(v1, v2) {
				continue
			}
			st.v12[v1] = v2
			st.v21[v2] = v1
			if depth+1 == len(st.order1) {
				return buildMapping(st.v12, st.pairs1, st.pairs2, st.directed), true, nil
			}
			st.stack = append(st.stack, &searchFrame{cands: st.candidates(st.order1[depth+1])})
			advanced = true

			break
		}
		if !advanced {
			st.stack = st.stack[:depth]
		}
	}
	st.done = true

	return nil, false, nil
}
