// File: full.go
// Role: Full implements the join-closed test-grade coverage check (C7).

package domination

import (
	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
	"github.com/katalvlaran/bidom/region"
)

// Full reports whether e is filtration-dominated: dominated unless some
// test grade in the join-closure of e's and its neighbors'
// first-domination grades lies inside every common neighbor's
// non-domination region. maxValue must be an actual largest value of V
// (or a reserved stand-in).
func Full[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V], maxValue V) bool {
	neighbors := idx.CommonNeighbors(e)
	if len(neighbors) == 0 {
		return false
	}

	regions := make([]*region.Region[V], 0, len(neighbors))
	firstDomination := make([]grade.Grade[V], 0, len(neighbors)+1)
	firstDomination = append(firstDomination, e.Grade)

	for _, nb := range neighbors {
		r := region.Build(idx, e, nb.Vertex, nb.Grade, maxValue)
		if r.IsEmpty() {
			return true // strong shortcut: nb strongly dominates e at every grade.
		}
		regions = append(regions, r)
		firstDomination = append(firstDomination, e.Grade.Join(nb.Grade))
	}

	testGrades := joinClosure(firstDomination)

	for _, t := range testGrades {
		if coveredByEvery(regions, t) {
			return false // every neighbor fails to dominate e at t: e survives.
		}
	}
	return true
}

// joinClosure returns the deduplicated set {f1 JOIN f2 : f1, f2 in f}.
func joinClosure[V grade.Value](f []grade.Grade[V]) []grade.Grade[V] {
	seen := make(map[grade.Grade[V]]struct{}, len(f)*len(f))
	out := make([]grade.Grade[V], 0, len(f)*len(f))
	for _, a := range f {
		for _, b := range f {
			t := a.Join(b)
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// coveredByEvery reports whether every region in rs contains t: i.e.
// every common neighbor's non-domination region covers t, so no
// neighbor dominates e at this grade.
func coveredByEvery[V grade.Value](rs []*region.Region[V], t grade.Grade[V]) bool {
	for _, r := range rs {
		if !r.Contains(t) {
			return false
		}
	}
	return true
}
