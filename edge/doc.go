// Package edge defines the undirected, unordered-endpoint Edge used
// throughout this module, the Filtered edge (an Edge plus a 2-D
// critical grade.Grade), and List, the growable edge-list container
// the removal driver consumes and produces.
//
// What
//
//   - Bare: an unordered pair {u, v}, u != v. Equal and Less work on the
//     unordered pair (min, max). Bare has no hash of its own: used as a
//     map key or compared with ==, {1,2} and {2,1} are distinct values.
//   - Filtered[V]: grade.Grade[V] + Bare. Total order: grade first
//     (lexicographic by default), ties broken by the unordered pair.
//   - List[V]: n_vertices plus a slice of Filtered[V]. Four sort orders
//     (forward/reverse x lex/colex), a uniform shuffle, a degree vector,
//     and maximum degree.
//
// Why
//
//	The removal driver (reduce.Reduce) needs a single mutable container
//	it can re-sort according to the chosen EdgeOrder before building the
//	adjacency index; keeping List's invariants (n_vertices always wide
//	enough for every endpoint) in one place avoids repeating that
//	bookkeeping in every caller.
//
// Determinism
//
//	Sorts are total orders (ties are broken by endpoint pair), so the
//	four named sorts are fully deterministic; Shuffle is the only
//	non-deterministic operation and is never called implicitly.
package edge
