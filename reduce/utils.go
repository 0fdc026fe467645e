// File: utils.go
// Role: CountIsolated, a diagnostic pass over an edge list, grounded
//       on original_source's count_isolated_edges.

package reduce

import (
	"github.com/katalvlaran/bidom/adjacency"
	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// CountIsolated builds an adjacency index over list and reports, for
// every edge in its stored order:
//   - isolated: the edge has no common neighbor already present at its
//     own grade (an empty neighborhood the instant it appears).
//   - dominatedAtBirth: the edge is already dominated (per the naive
//     reference check) at the exact grade it appears.
func CountIsolated[V grade.Value](list *edge.List[V]) (isolated int, dominatedAtBirth int) {
	idx := adjacency.FromEdgeList(list)

	for _, e := range list.Edges {
		hasApplicable := false
		for _, nb := range idx.CommonNeighbors(e) {
			if nb.Grade.Lte(e.Grade) {
				hasApplicable = true
				break
			}
		}
		if !hasApplicable {
			isolated++
		}
		if isDominatedAtTime(idx, e, idx.CommonNeighbors(e), e.Grade) {
			dominatedAtBirth++
		}
	}

	return isolated, dominatedAtBirth
}
