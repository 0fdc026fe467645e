// File: list.go
// Role: List[V], the growable container of Filtered edges consumed and
//       produced by the removal driver: construction, Add (with
//       n_vertices widening), the four named sort orders, Shuffle,
//       Degrees, and MaximumDegree.
// AI-HINT (file):
//   - NVertices only ever grows; List never shrinks it, even after
//     deletions elsewhere (the adjacency index, not this type, tracks
//     live edges during a reduction).

package edge

import (
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/bidom/grade"
)

// List is an edge list over vertices [0, NVertices).
// Invariant: NVertices >= 1 + the maximum endpoint appearing in Edges.
type List[V grade.Value] struct {
	NVertices int
	Edges     []Filtered[V]
}

// New returns an empty List with the given vertex count and capacity
// hint for its edge slice.
func New[V grade.Value](nVertices, capacityHint int) *List[V] {
	return &List[V]{
		NVertices: nVertices,
		Edges:     make([]Filtered[V], 0, capacityHint),
	}
}

// FromSlice builds a List from a slice of Filtered edges, deriving
// NVertices as 1 + the maximum endpoint seen.
func FromSlice[V grade.Value](edges []Filtered[V]) *List[V] {
	l := &List[V]{Edges: edges}
	l.recomputeVertexCount()
	return l
}

func (l *List[V]) recomputeVertexCount() {
	n := 0
	for _, e := range l.Edges {
		if e.Edge.U+1 > n {
			n = e.Edge.U + 1
		}
		if e.Edge.V+1 > n {
			n = e.Edge.V + 1
		}
	}
	l.NVertices = n
}

// Len returns the number of edges in the list.
func (l *List[V]) Len() int { return len(l.Edges) }

// Clone returns a deep copy of l: a distinct backing array for Edges,
// safe to mutate (sort, shuffle, truncate) without aliasing l.
func (l *List[V]) Clone() *List[V] {
	cp := make([]Filtered[V], len(l.Edges))
	copy(cp, l.Edges)
	return &List[V]{NVertices: l.NVertices, Edges: cp}
}

// Add appends e, widening NVertices if either endpoint is out of range.
// Returns ErrSelfLoop if e.Edge.U == e.Edge.V.
func (l *List[V]) Add(e Filtered[V]) error {
	if e.Edge.U == e.Edge.V {
		return ErrSelfLoop
	}
	if e.Edge.U+1 > l.NVertices {
		l.NVertices = e.Edge.U + 1
	}
	if e.Edge.V+1 > l.NVertices {
		l.NVertices = e.Edge.V + 1
	}
	l.Edges = append(l.Edges, e)
	return nil
}

// SortLex sorts ascending by the default lexicographic filtered-edge order.
func (l *List[V]) SortLex() {
	sort.Slice(l.Edges, func(i, j int) bool { return l.Edges[i].Less(l.Edges[j]) })
}

// SortReverseLex sorts descending by the lexicographic filtered-edge order.
func (l *List[V]) SortReverseLex() {
	sort.Slice(l.Edges, func(i, j int) bool { return l.Edges[j].Less(l.Edges[i]) })
}

// SortColex sorts ascending by the colexicographic filtered-edge order.
func (l *List[V]) SortColex() {
	sort.Slice(l.Edges, func(i, j int) bool { return l.Edges[i].LessColex(l.Edges[j]) })
}

// SortReverseColex sorts descending by the colexicographic filtered-edge order.
func (l *List[V]) SortReverseColex() {
	sort.Slice(l.Edges, func(i, j int) bool { return l.Edges[j].LessColex(l.Edges[i]) })
}

// Shuffle applies a uniform random permutation to Edges.
func (l *List[V]) Shuffle() {
	rand.Shuffle(len(l.Edges), func(i, j int) {
		l.Edges[i], l.Edges[j] = l.Edges[j], l.Edges[i]
	})
}

// Degrees returns a length-NVertices vector counting endpoint
// occurrences across Edges.
func (l *List[V]) Degrees() []int {
	deg := make([]int, l.NVertices)
	for _, e := range l.Edges {
		deg[e.Edge.U]++
		deg[e.Edge.V]++
	}
	return deg
}

// MaximumDegree returns the largest entry of Degrees, or 0 if l is empty.
func (l *List[V]) MaximumDegree() int {
	best := 0
	for _, d := range l.Degrees() {
		if d > best {
			best = d
		}
	}
	return best
}
