// Package adjacency implements the per-vertex adjacency index: for each
// vertex u, a mapping neighbor -> edge grade, supporting fast
// common-neighbor enumeration with per-edge grades. This is the data
// structure the removal driver (reduce.Reduce) builds once per
// reduction call and mutates in place as edges are deleted.
//
// What
//
//   - AddEdge / DeleteEdge: symmetric inserts/removals (v in N(u) iff
//     u in N(v), with matching grades).
//   - OpenNeighbors(u): neighbor -> grade pairs, sorted by vertex id.
//   - ClosedNeighbors(u, uValue): OpenNeighbors(u) with (u, uValue) merged in.
//   - CommonNeighbors(e): neighbors shared by e's two endpoints, each
//     annotated with the join of the two edge grades.
//   - ClosedNeighborsEdge(e): CommonNeighbors(e) joined with e's own
//     grade, plus e's two endpoints themselves.
//
// Why
//
//	Strong and full domination (package domination) and non-domination
//	region construction (package region) are all expressed as merges
//	over these sorted sequences; keeping the sort-by-vertex contract in
//	one place means every consumer can walk two sequences in lock-step
//	instead of re-deriving set operations over per-vertex maps.
//
// Concurrency
//
//	Index is guarded by a sync.RWMutex so that reduce's optional
//	parallel inner phase (building one non-domination region per
//	common neighbor concurrently, see reduce.WithParallel) can safely
//	issue concurrent reads while no outer-loop mutation is in flight;
//	the removal driver never mutates Index concurrently with those reads.
//
// Lifecycle
//
//	Built from a filtered-edge list at the start of a reduction,
//	mutated only by the driver, discarded after the reduction returns.
package adjacency
