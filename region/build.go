// File: build.go
// Role: Build constructs a Region[V] from the two sorted neighbor
//       sequences the adjacency package exposes for edge e and a
//       candidate dominator w, per the vertex-merge rule.

package region

import (
	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
	"github.com/katalvlaran/bidom/stripe"
)

// Region is the non-domination region R(e,w): the union of a vertical
// and a horizontal stripe family.
type Region[V grade.Value] struct {
	vertical   *stripe.Index[V]
	horizontal *stripe.Index[V]
}

// Contains reports whether w fails to dominate e at grade g: either
// the vertical family (queried (g0,g1)) or the horizontal family
// (queried (g1,g0)) covers g.
func (r *Region[V]) Contains(g grade.Grade[V]) bool {
	return r.vertical.Contains(g.G0, g.G1) || r.horizontal.Contains(g.G1, g.G0)
}

// IsEmpty reports whether both stripe families are empty: the signal
// that w strongly dominates e at every grade.
func (r *Region[V]) IsEmpty() bool {
	return r.vertical.IsEmpty() && r.horizontal.IsEmpty()
}

// Build constructs R(e,w). wGrade is rho(w) = N(u)[w] JOIN N(v)[w],
// i.e. the grade CommonNeighbors(e) reports for w before it is
// re-joined with e's own grade. maxValue must be an actual largest
// value of V (or a reserved stand-in), used wherever w never acquires
// one of e's neighbors.
func Build[V grade.Value](idx *adjacency.Index[V], e edge.Filtered[V], w int, wGrade grade.Grade[V], maxValue V) *Region[V] {
	a := idx.ClosedNeighborsEdge(e)
	b := idx.ClosedNeighbors(w, wGrade.Join(e.Grade))
	maxGrade := grade.MaxWith[V](maxValue)

	var vertical, horizontal []stripe.Stripe[V]

	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j].Vertex < a[i].Vertex {
			j++
		}

		p := a[i].Grade
		var q grade.Grade[V]
		if j < len(b) && b[j].Vertex == a[i].Vertex {
			q = p.Join(b[j].Grade)
			j++
		} else {
			q = maxGrade
		}
		i++

		if p.G0 != q.G0 {
			vertical = append(vertical, stripe.NewStripe(p.G0, q.G0, p.G1))
		}
		if p.G1 != q.G1 {
			horizontal = append(horizontal, stripe.NewStripe(p.G1, q.G1, p.G0))
		}
	}

	return &Region[V]{
		vertical:   stripe.New(vertical, maxValue),
		horizontal: stripe.New(horizontal, maxValue),
	}
}
