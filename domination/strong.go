// File: strong.go
// Role: Strong implements the single-dominator subset check (C6).

package domination

import (
	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// Strong reports whether e = (u,v) is strongly filtration-dominated:
// some common neighbor w != u,v satisfies L subset-of R, where
// L = ClosedNeighborsEdge(e) and R = ClosedNeighbors(w, rho(w) JOIN rho(e)),
// under the rule that for every (a, alpha) in L there exists (a, beta)
// in R with beta <= alpha.
func Strong[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V]) bool {
	l := idx.ClosedNeighborsEdge(e)

	for _, nb := range idx.CommonNeighbors(e) {
		joined := nb.Grade.Join(e.Grade)
		r := idx.ClosedNeighbors(nb.Vertex, joined)
		if subsetUnder(l, r) {
			return true
		}
	}
	return false
}

// subsetUnder walks l and r in lock-step (both sorted by vertex) and
// reports whether every (a, alpha) in l has a matching (a, beta) in r
// with beta <= alpha.
func subsetUnder[V grade.Value](l, r []adjacency.Pair[V]) bool {
	j := 0
	for _, lp := range l {
		for j < len(r) && r[j].Vertex < lp.Vertex {
			j++
		}
		if j >= len(r) || r[j].Vertex != lp.Vertex {
			return false
		}
		if !r[j].Grade.Lte(lp.Grade) {
			return false
		}
	}
	return true
}
