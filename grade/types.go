// File: types.go
// Role: Grade[V] constructors and algebra (Join, Lte, Gte, Lt, Incomparable),
//       sentinels (MinWith, MaxWith, Zero), and the two total orders
//       (CmpLex, CmpColex).
// AI-HINT (file):
//   - Grade is a plain value type (a two-field struct); copying is cheap and safe.
//   - Join is commutative, associative, and idempotent; MaxWith is absorbing.

package grade

import "golang.org/x/exp/constraints"

// Value is any totally ordered, copyable coordinate usable as a grade
// component: a bounded integer or a wrapper over a floating-point scalar.
type Value interface {
	constraints.Ordered
}

// Grade is a 2-D critical grade (g0, g1) drawn from a totally ordered
// value domain V. The zero Grade is (zero-value-of-V, zero-value-of-V),
// the same value Zero[V]() returns; it is not the least grade for
// domains with negative values (see MinWith).
type Grade[V Value] struct {
	G0 V
	G1 V
}

// New builds a Grade from two coordinates.
func New[V Value](g0, g1 V) Grade[V] {
	return Grade[V]{G0: g0, G1: g1}
}

// FromArray builds a Grade from a [2]V array, mirroring the common-neighbor
// join-pair literals used throughout the removal driver and its tests.
func FromArray[V Value](a [2]V) Grade[V] {
	return Grade[V]{G0: a[0], G1: a[1]}
}

// Zero returns the componentwise zero-value Grade for V.
func Zero[V Value]() Grade[V] {
	var z V
	return Grade[V]{G0: z, G1: z}
}

// MinWith returns the sentinel Grade (minValue, minValue); the caller
// supplies the least value of V.
func MinWith[V Value](minValue V) Grade[V] {
	return Grade[V]{G0: minValue, G1: minValue}
}

// MaxWith returns the sentinel Grade used as "never dominated" in
// region construction and as the empty-minimum in stripe sweeps.
// Implementations must choose a V with an actual largest value.
func MaxWith[V Value](maxValue V) Grade[V] {
	return Grade[V]{G0: maxValue, G1: maxValue}
}

// Join returns the componentwise maximum of a and b. Join is the
// lattice operation used everywhere a dominator's arrival time and an
// edge's grade are combined.
func (a Grade[V]) Join(b Grade[V]) Grade[V] {
	return Grade[V]{G0: max(a.G0, b.G0), G1: max(a.G1, b.G1)}
}

// Lte reports whether a <= b under the product order:
// a.G0 <= b.G0 && a.G1 <= b.G1.
func (a Grade[V]) Lte(b Grade[V]) bool {
	return a.G0 <= b.G0 && a.G1 <= b.G1
}

// Gte reports whether a >= b under the product order.
func (a Grade[V]) Gte(b Grade[V]) bool {
	return a.G0 >= b.G0 && a.G1 >= b.G1
}

// Lt reports whether a <= b and a != b.
func (a Grade[V]) Lt(b Grade[V]) bool {
	return a.Lte(b) && a != b
}

// Incomparable reports whether neither a <= b nor b <= a holds.
func (a Grade[V]) Incomparable(b Grade[V]) bool {
	return !a.Lte(b) && !b.Lte(a)
}

// Parameters is always 2 for this core; kept as a method for symmetry
// with the N-parameter grade this core's algebra generalizes from.
func (a Grade[V]) Parameters() int { return 2 }

// CmpLex is the default total order: compare G0 first, then G1. Ties
// return 0. Used by edge.List's lexicographic sorts and by the
// filtered-edge total order (grade first, endpoints break ties).
func CmpLex[V Value](a, b Grade[V]) int {
	if a.G0 != b.G0 {
		if a.G0 < b.G0 {
			return -1
		}
		return 1
	}
	if a.G1 != b.G1 {
		if a.G1 < b.G1 {
			return -1
		}
		return 1
	}
	return 0
}

// CmpColex compares the second coordinate first, then the first.
func CmpColex[V Value](a, b Grade[V]) int {
	if a.G1 != b.G1 {
		if a.G1 < b.G1 {
			return -1
		}
		return 1
	}
	if a.G0 != b.G0 {
		if a.G0 < b.G0 {
			return -1
		}
		return 1
	}
	return 0
}
