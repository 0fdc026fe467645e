// File: types.go
// Role: Bare edge and Filtered edge types, equality/order helpers.
// AI-HINT (file):
//   - Bare{} zero value is {0,0}, which is NOT a valid edge (u==v); always
//     construct via New, which enforces u != v.

package edge

import (
	"errors"

	"github.com/katalvlaran/bidom/grade"
)

// ErrSelfLoop is returned by New and List.Add when u == v.
var ErrSelfLoop = errors.New("edge: self-loop not allowed")

// Bare is an undirected edge between two distinct vertices in [0, n).
// Equality and ordering are both on the unordered pair (min(u,v), max(u,v)).
type Bare struct {
	U, V int
}

// New constructs a Bare edge. Returns ErrSelfLoop if u == v.
func New(u, v int) (Bare, error) {
	if u == v {
		return Bare{}, ErrSelfLoop
	}
	return Bare{U: u, V: v}, nil
}

// MinMax returns (min(U,V), max(U,V)), the canonical unordered form.
func (b Bare) MinMax() (int, int) {
	if b.U < b.V {
		return b.U, b.V
	}
	return b.V, b.U
}

// Equal reports unordered-pair equality: {u,v} == {v,u}.
func (b Bare) Equal(other Bare) bool {
	bMin, bMax := b.MinMax()
	oMin, oMax := other.MinMax()
	return bMin == oMin && bMax == oMax
}

// Less orders two Bare edges lexicographically on (min, max).
func (b Bare) Less(other Bare) bool {
	bMin, bMax := b.MinMax()
	oMin, oMax := other.MinMax()
	if bMin != oMin {
		return bMin < oMin
	}
	return bMax < oMax
}

// Filtered is a Bare edge annotated with its 2-D critical grade.
type Filtered[V grade.Value] struct {
	Grade grade.Grade[V]
	Edge  Bare
}

// NewFiltered constructs a Filtered edge. Returns ErrSelfLoop if u == v.
func NewFiltered[V grade.Value](g grade.Grade[V], u, v int) (Filtered[V], error) {
	b, err := New(u, v)
	if err != nil {
		return Filtered[V]{}, err
	}
	return Filtered[V]{Grade: g, Edge: b}, nil
}

// Less implements the default filtered-edge total order: compare grades
// lexicographically first, then break ties on the unordered endpoint pair.
func (f Filtered[V]) Less(other Filtered[V]) bool {
	switch grade.CmpLex(f.Grade, other.Grade) {
	case -1:
		return true
	case 1:
		return false
	default:
		return f.Edge.Less(other.Edge)
	}
}

// LessColex is as Less, but compares grades colexicographically.
func (f Filtered[V]) LessColex(other Filtered[V]) bool {
	switch grade.CmpColex(f.Grade, other.Grade) {
	case -1:
		return true
	case 1:
		return false
	default:
		return f.Edge.Less(other.Edge)
	}
}
