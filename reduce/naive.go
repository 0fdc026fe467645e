// File: naive.go
// Role: Naive is a reference filtration-domination reducer that
//       reasons about vertex-set inclusion directly at each join-closed
//       critical grade, without the stripe-region machinery full.go
//       relies on. Grounded on original_source's naive edge collapse:
//       slower, but its correctness is easier to eyeball, so it exists
//       to cross-check Reduce's Full mode in tests.

package reduce

import (
	"time"

	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// Naive removes filtration-dominated edges from list using the direct
// vertex-set reference check instead of domination.Full. It supports
// only order and an optional budget; mode is always "full" semantics.
func Naive[V grade.Value](list *edge.List[V], order EdgeOrder, opts ...Option) (*edge.List[V], error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	working := list.Clone()
	switch order {
	case ReverseLexicographic:
		working.SortReverseLex()
	case Maintain:
	}

	idx := adjacency.FromEdgeList(working)
	survivors := make([]edge.Filtered[V], 0, working.Len())

	start := time.Now()
	for _, e := range working.Edges {
		if options.Budget != nil && time.Since(start) > *options.Budget {
			return list.Clone(), nil
		}

		if isDominatedNaive(idx, e) {
			idx.DeleteEdge(e.Edge.U, e.Edge.V)
		} else {
			survivors = append(survivors, e)
		}
	}

	return &edge.List[V]{NVertices: working.NVertices, Edges: survivors}, nil
}

func isDominatedNaive[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V]) bool {
	neighbors := idx.CommonNeighbors(e)

	seen := map[grade.Grade[V]]struct{}{e.Grade: {}}
	firstDomination := []grade.Grade[V]{e.Grade}
	for _, nb := range neighbors {
		t := e.Grade.Join(nb.Grade)
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			firstDomination = append(firstDomination, t)
		}
	}

	testSeen := make(map[grade.Grade[V]]struct{}, len(firstDomination)*len(firstDomination))
	for _, a := range firstDomination {
		for _, b := range firstDomination {
			t := a.Join(b)
			if _, ok := testSeen[t]; ok {
				continue
			}
			testSeen[t] = struct{}{}
			if !isDominatedAtTime(idx, e, neighbors, t) {
				return false
			}
		}
	}
	return true
}

// isDominatedAtTime reports whether, at grade t, some neighbor already
// present (its joined grade <= t) already has every one of e's
// already-present common neighbors in its own t-truncated neighborhood.
func isDominatedAtTime[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V], neighbors []adjacency.Pair[V], t grade.Grade[V]) bool {
	applicable := applicableVertices(neighbors, t)
	for _, nb := range neighbors {
		if !nb.Grade.Lte(t) {
			continue
		}
		other := idx.NeighborsAtOrBefore(nb.Vertex, t)
		if isVertexSubset(applicable, other) {
			return true
		}
	}
	return false
}

func applicableVertices[V grade.Value](neighbors []adjacency.Pair[V], t grade.Grade[V]) []int {
	out := make([]int, 0, len(neighbors))
	for _, nb := range neighbors {
		if nb.Grade.Lte(t) {
			out = append(out, nb.Vertex)
		}
	}
	return out
}

// isVertexSubset reports whether every id in a appears in the sorted
// slice b, via a lock-step merge.
func isVertexSubset(a, b []int) bool {
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j >= len(b) || b[j] != v {
			return false
		}
	}
	return true
}
