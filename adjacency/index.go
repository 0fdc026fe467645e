// File: index.go
// Role: Index[V] construction, AddEdge/DeleteEdge, and the four
//       neighbor-enumeration methods (OpenNeighbors, ClosedNeighbors,
//       CommonNeighbors, ClosedNeighborsEdge).
// Determinism:
//   - All enumeration methods return results sorted by vertex id
//     ascending, per the sorted-iteration contract required by
//     package region and package domination.
// Concurrency:
//   - Mutations (AddEdge/DeleteEdge) take the write lock.
//   - Enumerations take the read lock.

package adjacency

import (
	"sort"
	"sync"

	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// Pair is a (neighbor vertex, grade) entry as returned by Index's
// enumeration methods.
type Pair[V grade.Value] struct {
	Vertex int
	Grade  grade.Grade[V]
}

// Index is the per-vertex adjacency index: neighbors[u][v] = grade of
// edge {u,v}. u is never a key of neighbors[u] (no self-loops).
type Index[V grade.Value] struct {
	mu        sync.RWMutex
	neighbors []map[int]grade.Grade[V]
}

// New allocates an Index with n empty per-vertex maps.
func New[V grade.Value](n int) *Index[V] {
	idx := &Index[V]{neighbors: make([]map[int]grade.Grade[V], n)}
	for i := range idx.neighbors {
		idx.neighbors[i] = make(map[int]grade.Grade[V])
	}
	return idx
}

// FromEdgeList builds an Index containing every edge in l.
func FromEdgeList[V grade.Value](l *edge.List[V]) *Index[V] {
	idx := New[V](l.NVertices)
	for _, e := range l.Edges {
		idx.AddEdge(e.Grade, e.Edge.U, e.Edge.V)
	}
	return idx
}

// AddEdge inserts N(u)[v] = N(v)[u] = g. Re-insertion overwrites the
// previous grade. u and v must satisfy u != v; callers that already
// validated their edges (e.g. via edge.New) never trip this.
func (idx *Index[V]) AddEdge(g grade.Grade[V], u, v int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.neighbors[u][v] = g
	idx.neighbors[v][u] = g
}

// DeleteEdge removes both sides of {u,v}. Deleting a missing edge is a no-op.
func (idx *Index[V]) DeleteEdge(u, v int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.neighbors[u], v)
	delete(idx.neighbors[v], u)
}

// OpenNeighbors returns the neighbors of u, sorted by vertex id
// ascending, each paired with the grade of the edge {u, neighbor}.
func (idx *Index[V]) OpenNeighbors(u int) []Pair[V] {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.sortedPairsLocked(idx.neighbors[u])
}

func (idx *Index[V]) sortedPairsLocked(m map[int]grade.Grade[V]) []Pair[V] {
	out := make([]Pair[V], 0, len(m))
	for v, g := range m {
		out = append(out, Pair[V]{Vertex: v, Grade: g})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vertex < out[j].Vertex })
	return out
}

// ClosedNeighbors returns OpenNeighbors(u) with (u, uValue) merged in
// at its sorted position, treating u as its own neighbor at a
// synthetic grade uValue.
func (idx *Index[V]) ClosedNeighbors(u int, uValue grade.Grade[V]) []Pair[V] {
	open := idx.OpenNeighbors(u)
	return mergeSelf(open, u, uValue)
}

func mergeSelf[V grade.Value](open []Pair[V], self int, selfValue grade.Grade[V]) []Pair[V] {
	out := make([]Pair[V], 0, len(open)+1)
	inserted := false
	for _, p := range open {
		if !inserted && p.Vertex > self {
			out = append(out, Pair[V]{Vertex: self, Grade: selfValue})
			inserted = true
		}
		out = append(out, p)
	}
	if !inserted {
		out = append(out, Pair[V]{Vertex: self, Grade: selfValue})
	}
	return out
}

// NeighborsAtOrBefore returns u itself together with every neighbor w of
// u whose edge grade is <= atValue, sorted by vertex id ascending. Used
// by package reduce's naive reference reducer, which reasons about
// vertex-set inclusion at a fixed critical grade rather than via
// region.Build's stripe machinery.
func (idx *Index[V]) NeighborsAtOrBefore(u int, atValue grade.Grade[V]) []int {
	open := idx.OpenNeighbors(u)
	out := make([]int, 0, len(open)+1)
	inserted := false
	for _, p := range open {
		if !inserted && p.Vertex > u {
			out = append(out, u)
			inserted = true
		}
		if p.Grade.Lte(atValue) {
			out = append(out, p.Vertex)
		}
	}
	if !inserted {
		out = append(out, u)
	}
	return out
}

// CommonNeighbors returns, for e = {u,v}, the vertices adjacent to both
// u and v (excluding u and v themselves), each paired with the join of
// the two edge grades N(u)[w] and N(v)[w]. Sorted by vertex id ascending.
func (idx *Index[V]) CommonNeighbors(e edge.Filtered[V]) []Pair[V] {
	u, v := e.Edge.U, e.Edge.V

	idx.mu.RLock()
	uAdj := idx.sortedPairsLocked(idx.neighbors[u])
	vMap := idx.neighbors[v]
	out := make([]Pair[V], 0, len(uAdj))
	for _, p := range uAdj {
		if gv, ok := vMap[p.Vertex]; ok {
			out = append(out, Pair[V]{Vertex: p.Vertex, Grade: p.Grade.Join(gv)})
		}
	}
	idx.mu.RUnlock()

	return out
}

// ClosedNeighborsEdge returns CommonNeighbors(e), each re-joined with
// e.Grade, with (u, e.Grade) and (v, e.Grade) merged in. Sorted by
// vertex id ascending, as required by package region and package
// domination, which consume this alongside ClosedNeighbors in a
// vertex-merge style.
func (idx *Index[V]) ClosedNeighborsEdge(e edge.Filtered[V]) []Pair[V] {
	common := idx.CommonNeighbors(e)
	for i := range common {
		common[i].Grade = common[i].Grade.Join(e.Grade)
	}
	u, v := e.Edge.U, e.Edge.V
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	withLo := mergeSelf(common, lo, e.Grade)
	return mergeSelf(withLo, hi, e.Grade)
}
