// File: multiset.go
// Role: A small ordered multiset of active y0 values, used by the
//       sweep in index.go to track which stripes currently cover the
//       sweep line and recover their minimum in O(log k).
// AI-HINT (file):
//   - Hand-rolled sorted-slice multiset: no pack dependency exposes an
//     ordered multiset generic over grade.Value (see DESIGN.md), so
//     this mirrors the technique (binary-search insert/delete into a
//     sorted slice) rather than importing one.

package stripe

import (
	"sort"

	"github.com/katalvlaran/bidom/grade"
)

type multiset[V grade.Value] struct {
	counts map[V]int
	sorted []V // unique active values, ascending
}

func newMultiset[V grade.Value]() *multiset[V] {
	return &multiset[V]{counts: make(map[V]int)}
}

func (m *multiset[V]) add(v V) {
	if m.counts[v] == 0 {
		pos := sort.Search(len(m.sorted), func(i int) bool { return m.sorted[i] >= v })
		m.sorted = append(m.sorted, v)
		copy(m.sorted[pos+1:], m.sorted[pos:])
		m.sorted[pos] = v
	}
	m.counts[v]++
}

func (m *multiset[V]) remove(v V) {
	c, ok := m.counts[v]
	if !ok {
		return
	}
	if c <= 1 {
		delete(m.counts, v)
		pos := sort.Search(len(m.sorted), func(i int) bool { return m.sorted[i] >= v })
		if pos < len(m.sorted) && m.sorted[pos] == v {
			m.sorted = append(m.sorted[:pos], m.sorted[pos+1:]...)
		}
		return
	}
	m.counts[v] = c - 1
}

// min returns the smallest active value, or ok=false if none is active.
func (m *multiset[V]) min() (V, bool) {
	if len(m.sorted) == 0 {
		var zero V
		return zero, false
	}
	return m.sorted[0], true
}
