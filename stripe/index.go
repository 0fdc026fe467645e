// File: index.go
// Role: Sweep build of Index from a Stripe slice, and the Contains/IsEmpty queries.
// AI-HINT (file):
//   - maxValue must be an actual largest value of V (or a reserved
//     stand-in); it is recorded whenever no stripe is active at an endpoint.

package stripe

import (
	"sort"

	"github.com/katalvlaran/bidom/grade"
)

// record is one entry of the pre-sorted arrangement: at x >= X (and
// before the next record's X), the best (minimum) active y0 is MinY.
type record[V grade.Value] struct {
	X    V
	MinY V
}

// Index is the pre-sorted arrangement answering Contains in O(log k).
type Index[V grade.Value] struct {
	records []record[V]
}

type delimiter[V grade.Value] struct {
	endpoint V
	y        V
	isStart  bool
}

// New builds an Index from stripes. maxValue is recorded for any
// x-range where no stripe is active (the "never covered" sentinel).
func New[V grade.Value](stripes []Stripe[V], maxValue V) *Index[V] {
	if len(stripes) == 0 {
		return &Index[V]{}
	}

	delims := make([]delimiter[V], 0, len(stripes)*2)
	for _, s := range stripes {
		delims = append(delims,
			delimiter[V]{endpoint: s.Span.Lo, y: s.Y, isStart: true},
			delimiter[V]{endpoint: s.Span.Hi, y: s.Y, isStart: false},
		)
	}
	sort.Slice(delims, func(i, j int) bool {
		if delims[i].endpoint != delims[j].endpoint {
			return delims[i].endpoint < delims[j].endpoint
		}
		if delims[i].isStart != delims[j].isStart {
			return delims[i].isStart // Start before End when endpoints coincide.
		}
		return delims[i].y < delims[j].y
	})

	active := newMultiset[V]()
	records := make([]record[V], 0, len(delims))

	i := 0
	for i < len(delims) {
		endpoint := delims[i].endpoint
		for i < len(delims) && delims[i].endpoint == endpoint {
			if delims[i].isStart {
				active.add(delims[i].y)
			} else {
				active.remove(delims[i].y)
			}
			i++
		}
		minY, ok := active.min()
		if !ok {
			minY = maxValue
		}
		records = append(records, record[V]{X: endpoint, MinY: minY})
	}

	return &Index[V]{records: records}
}

// Contains reports whether the point (x, y) lies under at least one stripe.
func (idx *Index[V]) Contains(x, y V) bool {
	n := len(idx.records)
	if n == 0 {
		return false
	}
	// Binary search for the largest record with X <= x.
	pos := sort.Search(n, func(i int) bool { return idx.records[i].X > x })
	if pos == 0 {
		return false
	}
	return idx.records[pos-1].MinY <= y
}

// IsEmpty reports whether this Index has no stripes at all: the
// signal that a dominator strongly dominates at every grade.
func (idx *Index[V]) IsEmpty() bool {
	return len(idx.records) == 0
}
