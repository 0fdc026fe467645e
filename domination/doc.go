// Package domination implements the two edge-removal predicates the
// reduce driver calls per candidate edge: Strong (a single-dominator
// subset check) and Full (a join-closed test-grade coverage check
// built on package region's non-domination regions).
//
// What
//
//   - Strong reports whether some common neighbor w's closed
//     neighborhood (with w itself at the joined grade rho(w) JOIN rho(e))
//     contains every entry of e's closed edge-neighborhood, each at a
//     grade no larger than that entry's own.
//   - Full reports whether every critical grade in the join-closure of
//     e's and its neighbors' first-domination grades lies outside at
//     least one neighbor's non-domination region, with a strong
//     shortcut whenever any single region is empty.
//
// Why
//
//	Both tests read the same adjacency index and the same common
//	neighbor set; separating them from package reduce keeps the
//	removal driver's outer loop (order, budget, mutation) free of the
//	domination math, and lets each test be exercised directly against
//	the design notes' scenarios (S1, S5) without a full reduction run.
package domination
