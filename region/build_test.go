package region_test

import (
	"testing"

	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
	"github.com/katalvlaran/bidom/region"
)

const maxValue = 1 << 30

func g(g0, g1 int) grade.Grade[int] { return grade.New(g0, g1) }

// TestNonDominationHappyCase is scenario S4: e=(0,1) at grade (2,2),
// common neighbors {2@(2,3), 3@(4,4), 4@(5,5), 5@(10,10)}, where vertex
// 3 connects to 2 at (1,1) and to 4 at (6,6).
func TestNonDominationHappyCase(t *testing.T) {
	idx := adjacency.New[int](6)
	idx.AddEdge(g(2, 2), 0, 1)
	idx.AddEdge(g(2, 3), 0, 2)
	idx.AddEdge(g(2, 3), 1, 2)
	idx.AddEdge(g(4, 4), 0, 3)
	idx.AddEdge(g(4, 4), 1, 3)
	idx.AddEdge(g(5, 5), 0, 4)
	idx.AddEdge(g(5, 5), 1, 4)
	idx.AddEdge(g(10, 10), 0, 5)
	idx.AddEdge(g(10, 10), 1, 5)
	idx.AddEdge(g(1, 1), 2, 3)
	idx.AddEdge(g(6, 6), 3, 4)

	e, err := edge.NewFiltered(g(2, 2), 0, 1)
	if err != nil {
		t.Fatalf("NewFiltered: %v", err)
	}

	r := region.Build(idx, e, 3, g(4, 4), maxValue)

	assertRegion(t, r, g(2, 2), true)
	assertRegion(t, r, g(4, 4), false)
	assertRegion(t, r, g(5, 5), true)
	assertRegion(t, r, g(10, 10), true)
}

// TestEmptyRegionIsStrongDominator: a neighbor w that is joined with
// every neighbor of e at a grade no larger than e's own neighbors
// yields an empty region (w strongly dominates e).
func TestEmptyRegionIsStrongDominator(t *testing.T) {
	idx := adjacency.New[int](3)
	idx.AddEdge(g(0, 0), 0, 1)
	idx.AddEdge(g(0, 0), 0, 2)
	idx.AddEdge(g(0, 0), 1, 2)

	e, err := edge.NewFiltered(g(0, 0), 0, 1)
	if err != nil {
		t.Fatalf("NewFiltered: %v", err)
	}

	r := region.Build(idx, e, 2, g(0, 0), maxValue)
	if !r.IsEmpty() {
		t.Errorf("expected empty region, got a non-empty one")
	}
	if r.Contains(g(0, 0)) {
		t.Errorf("an empty region must not contain any grade")
	}
}

func assertRegion(t *testing.T, r *region.Region[int], at grade.Grade[int], want bool) {
	t.Helper()
	if got := r.Contains(at); got != want {
		t.Errorf("Contains(%v) = %v; want %v", at, got, want)
	}
}
