package reduce_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
	"github.com/katalvlaran/bidom/reduce"
)

const maxValue = 1 << 30

func mustFiltered(t *testing.T, g0, g1, u, v int) edge.Filtered[int] {
	t.Helper()
	f, err := edge.NewFiltered(grade.New(g0, g1), u, v)
	if err != nil {
		t.Fatalf("NewFiltered: %v", err)
	}
	return f
}

// TestTriangleStrongRemovesOne is scenario S1.
func TestTriangleStrongRemovesOne(t *testing.T) {
	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1),
		mustFiltered(t, 0, 0, 0, 2),
		mustFiltered(t, 0, 0, 1, 2),
	})

	out, err := reduce.Reduce(list, reduce.Strong, reduce.ReverseLexicographic, maxValue)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out.Len() != 2 {
		t.Errorf("Len() = %d; want 2", out.Len())
	}
}

// TestZeroBudgetIsByteEquivalent is property P6: with budget 0, the
// output equals the input.
func TestZeroBudgetIsByteEquivalent(t *testing.T) {
	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1),
		mustFiltered(t, 0, 0, 0, 2),
		mustFiltered(t, 0, 0, 1, 2),
		mustFiltered(t, 1, 1, 0, 3),
	})

	out, err := reduce.Reduce(list, reduce.Full, reduce.Maintain, maxValue, reduce.WithBudget(0))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out.Len() != list.Len() {
		t.Fatalf("Len() = %d; want %d (unchanged)", out.Len(), list.Len())
	}
	for i := range list.Edges {
		if !out.Edges[i].Edge.Equal(list.Edges[i].Edge) || out.Edges[i].Grade != list.Edges[i].Grade {
			t.Errorf("edge %d changed under a zero budget: got %+v, want %+v", i, out.Edges[i], list.Edges[i])
		}
	}
}

// TestSubsetProperty is P1: the survivors are a sub-multiset of the input.
func TestSubsetProperty(t *testing.T) {
	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1),
		mustFiltered(t, 0, 0, 0, 2),
		mustFiltered(t, 0, 0, 1, 2),
		mustFiltered(t, 2, 2, 0, 3),
		mustFiltered(t, 2, 2, 1, 3),
	})

	out, err := reduce.Reduce(list, reduce.Full, reduce.ReverseLexicographic, maxValue)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out.Len() > list.Len() {
		t.Fatalf("survivors (%d) exceed input (%d)", out.Len(), list.Len())
	}
	present := make(map[edge.Bare]bool, list.Len())
	for _, e := range list.Edges {
		present[e.Edge] = true
	}
	for _, e := range out.Edges {
		if !present[e.Edge] {
			t.Errorf("survivor %+v was not in the input", e)
		}
	}
}

// TestStrongSubsetOfFull is P3: reduce_full removes at least as many
// edges as reduce_strong.
func TestStrongSubsetOfFull(t *testing.T) {
	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1),
		mustFiltered(t, 0, 2, 0, 2),
		mustFiltered(t, 0, 2, 1, 2),
		mustFiltered(t, 2, 0, 0, 3),
		mustFiltered(t, 2, 0, 1, 3),
		mustFiltered(t, 0, 0, 0, 4),
		mustFiltered(t, 0, 0, 1, 4),
		mustFiltered(t, 2, 2, 2, 3),
	})

	strongOut, err := reduce.Reduce(list, reduce.Strong, reduce.ReverseLexicographic, maxValue)
	if err != nil {
		t.Fatalf("Reduce(strong): %v", err)
	}
	fullOut, err := reduce.Reduce(list, reduce.Full, reduce.ReverseLexicographic, maxValue)
	if err != nil {
		t.Fatalf("Reduce(full): %v", err)
	}
	if fullOut.Len() > strongOut.Len() {
		t.Errorf("full survivors (%d) exceed strong survivors (%d)", fullOut.Len(), strongOut.Len())
	}
}

// TestTimeoutReturnsInputUnchanged is scenario S6: a large graph with a
// 1ns budget must return the input untouched.
func TestTimeoutReturnsInputUnchanged(t *testing.T) {
	edges := make([]edge.Filtered[int], 0, 200)
	for i := 0; i < 50; i++ {
		edges = append(edges,
			mustFiltered(t, i%7, i%5, i, (i+1)%50),
			mustFiltered(t, i%3, i%11, i, (i+2)%50),
		)
	}
	list := edge.FromSlice(edges)

	out, err := reduce.Reduce(list, reduce.Full, reduce.ReverseLexicographic, maxValue, reduce.WithBudget(1*time.Nanosecond))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if out.Len() != list.Len() {
		t.Fatalf("Len() = %d; want %d (timeout must not commit any removal)", out.Len(), list.Len())
	}
}

func TestNegativeBudgetIsRejected(t *testing.T) {
	list := edge.New[int](2, 0)
	_, err := reduce.Reduce(list, reduce.Full, reduce.Maintain, maxValue, reduce.WithBudget(-1))
	if err == nil {
		t.Errorf("expected an error for a negative budget")
	}
}

// TestFullAndNaiveAgree cross-checks Reduce's Full mode against the
// naive reference reducer on the same graph TestStrongSubsetOfFull uses.
func TestFullAndNaiveAgree(t *testing.T) {
	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1),
		mustFiltered(t, 0, 2, 0, 2),
		mustFiltered(t, 0, 2, 1, 2),
		mustFiltered(t, 2, 0, 0, 3),
		mustFiltered(t, 2, 0, 1, 3),
		mustFiltered(t, 0, 0, 0, 4),
		mustFiltered(t, 0, 0, 1, 4),
		mustFiltered(t, 2, 2, 2, 3),
	})

	fullOut, err := reduce.Reduce(list, reduce.Full, reduce.ReverseLexicographic, maxValue)
	if err != nil {
		t.Fatalf("Reduce(full): %v", err)
	}
	naiveOut, err := reduce.Naive(list, reduce.ReverseLexicographic)
	if err != nil {
		t.Fatalf("Naive: %v", err)
	}
	if fullOut.Len() != naiveOut.Len() {
		t.Errorf("Full removed %d edges, Naive removed %d; expected agreement", list.Len()-fullOut.Len(), list.Len()-naiveOut.Len())
	}
}

func TestParallelFullAgreesWithSerial(t *testing.T) {
	defer goleak.VerifyNone(t)

	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1),
		mustFiltered(t, 0, 0, 0, 2),
		mustFiltered(t, 0, 0, 1, 2),
		mustFiltered(t, 1, 1, 0, 3),
		mustFiltered(t, 1, 1, 1, 3),
		mustFiltered(t, 1, 1, 2, 3),
	})

	serial, err := reduce.Reduce(list, reduce.Full, reduce.ReverseLexicographic, maxValue)
	if err != nil {
		t.Fatalf("Reduce(serial): %v", err)
	}
	parallel, err := reduce.Reduce(list, reduce.Full, reduce.ReverseLexicographic, maxValue, reduce.WithParallel(4))
	if err != nil {
		t.Fatalf("Reduce(parallel): %v", err)
	}
	if serial.Len() != parallel.Len() {
		t.Errorf("serial removed %d, parallel removed %d; expected agreement", list.Len()-serial.Len(), list.Len()-parallel.Len())
	}
}

func TestCountIsolated(t *testing.T) {
	list := edge.FromSlice([]edge.Filtered[int]{
		mustFiltered(t, 0, 0, 0, 1), // triangle: every edge has an applicable common neighbor
		mustFiltered(t, 0, 0, 0, 2),
		mustFiltered(t, 0, 0, 1, 2),
		mustFiltered(t, 0, 0, 2, 3), // pendant: vertex 3 shares no neighbor with vertex 2
	})

	isolated, _ := reduce.CountIsolated(list)
	if isolated != 1 {
		t.Errorf("isolated = %d; want 1 (only the pendant edge (2,3) lacks an applicable common neighbor)", isolated)
	}
}
