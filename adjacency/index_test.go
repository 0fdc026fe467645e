package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

func filtered(t *testing.T, g0, g1, u, v int) edge.Filtered[int] {
	t.Helper()
	f, err := edge.NewFiltered(grade.New(g0, g1), u, v)
	require.NoError(t, err)
	return f
}

// TestSymmetry verifies P9: after add/delete, v in N(u) iff u in N(v), with matching grades.
func TestSymmetry(t *testing.T) {
	idx := adjacency.New[int](4)
	idx.AddEdge(grade.New(1, 2), 0, 1)

	un := idx.OpenNeighbors(0)
	require.Len(t, un, 1)
	assert.Equal(t, 1, un[0].Vertex)
	assert.Equal(t, grade.New(1, 2), un[0].Grade)

	vn := idx.OpenNeighbors(1)
	require.Len(t, vn, 1)
	assert.Equal(t, 0, vn[0].Vertex)
	assert.Equal(t, grade.New(1, 2), vn[0].Grade)

	idx.DeleteEdge(0, 1)
	assert.Empty(t, idx.OpenNeighbors(0))
	assert.Empty(t, idx.OpenNeighbors(1))
}

func TestDeleteMissingEdgeIsNoOp(t *testing.T) {
	idx := adjacency.New[int](3)
	idx.DeleteEdge(0, 1)
	assert.Empty(t, idx.OpenNeighbors(0))
}

func TestAddEdgeOverwritesGrade(t *testing.T) {
	idx := adjacency.New[int](2)
	idx.AddEdge(grade.New(1, 1), 0, 1)
	idx.AddEdge(grade.New(5, 5), 0, 1)
	n := idx.OpenNeighbors(0)
	require.Len(t, n, 1)
	assert.Equal(t, grade.New(5, 5), n[0].Grade)
}

// buildTriangle builds the S1 triangle: vertices {0,1,2}, all edges at grade (0,0).
func buildTriangle(t *testing.T) *adjacency.Index[int] {
	t.Helper()
	idx := adjacency.New[int](3)
	idx.AddEdge(grade.New(0, 0), 0, 1)
	idx.AddEdge(grade.New(0, 0), 0, 2)
	idx.AddEdge(grade.New(0, 0), 1, 2)
	return idx
}

func TestCommonNeighbors(t *testing.T) {
	idx := buildTriangle(t)
	e := filtered(t, 0, 0, 0, 1)
	common := idx.CommonNeighbors(e)
	require.Len(t, common, 1)
	assert.Equal(t, 2, common[0].Vertex)
	assert.Equal(t, grade.New(0, 0), common[0].Grade)
}

func TestClosedNeighborsEdgeSortedAndComplete(t *testing.T) {
	idx := buildTriangle(t)
	e := filtered(t, 0, 0, 0, 1)
	closed := idx.ClosedNeighborsEdge(e)
	// Expect vertices {0,1,2}, sorted ascending.
	require.Len(t, closed, 3)
	for i, want := range []int{0, 1, 2} {
		assert.Equal(t, want, closed[i].Vertex)
	}
}

func TestClosedNeighborsMergesSelf(t *testing.T) {
	idx := adjacency.New[int](3)
	idx.AddEdge(grade.New(1, 1), 0, 2)
	closed := idx.ClosedNeighbors(0, grade.New(5, 5))
	require.Len(t, closed, 2)
	assert.Equal(t, 0, closed[0].Vertex)
	assert.Equal(t, grade.New(5, 5), closed[0].Grade)
	assert.Equal(t, 2, closed[1].Vertex)
}

func TestFromEdgeList(t *testing.T) {
	l := &edge.List[int]{}
	_ = l.Add(filtered(t, 0, 0, 0, 1))
	_ = l.Add(filtered(t, 0, 0, 1, 2))
	idx := adjacency.FromEdgeList(l)
	assert.Len(t, idx.OpenNeighbors(1), 2)
}
