// File: types.go
// Role: Interval and Stripe value types.

package stripe

import "github.com/katalvlaran/bidom/grade"

// Interval is a half-open span [Lo, Hi).
type Interval[V grade.Value] struct {
	Lo, Hi V
}

// Stripe is a half-open axis-aligned strip: Span x Y covers every
// point (x, y) with Span.Lo <= x < Span.Hi and y >= Y.
type Stripe[V grade.Value] struct {
	Span Interval[V]
	Y    V
}

// NewStripe constructs a Stripe covering [lo, hi) x [y, +inf).
func NewStripe[V grade.Value](lo, hi, y V) Stripe[V] {
	return Stripe[V]{Span: Interval[V]{Lo: lo, Hi: hi}, Y: y}
}
