package mst

// UnionFind is a disjoint-set forest with path compression and union by
// rank. The zero value is not usable; construct with NewUnionFind.
type UnionFind struct {
	parent map[int64]int64
	rank   map[int64]int
	count  int
}

// NewUnionFind creates a forest with each id in its own singleton set.
func NewUnionFind(ids ...int64) *UnionFind {
	u := &UnionFind{
		parent: make(map[int64]int64, len(ids)),
		rank:   make(map[int64]int, len(ids)),
	}
	for _, id := range ids {
		u.Add(id)
	}

	return u
}

// Add inserts id as a singleton set; known ids are left untouched.
func (u *UnionFind) Add(id int64) {
	if _, ok := u.parent[id]; ok {
		return
	}
	u.parent[id] = id
	u.rank[id] = 0
	u.count++
}

// Find returns the set representative of id, compressing the path walked.
// Unknown ids are implicitly added.
func (u *UnionFind) Find(id int64) int64 {
	if _, ok := u.parent[id]; !ok {
		u.Add(id)
	}
	for u.parent[id] != id {
		u.parent[id] = u.parent[u.parent[id]]
		id = u.parent[id]
	}

	return id
}

// Union merges the sets of a and b, reporting whether a merge happened.
func (u *UnionFind) Union(a, b int64) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	u.count--

	return true
}

// Connected reports whether a and b share a set.
func (u *UnionFind) Connected(a, b int64) bool {
	return u.Find(a) == u.Find(b)
}

// Count returns the number of disjoint sets.
func (u *UnionFind) Count() int { return u.count }
