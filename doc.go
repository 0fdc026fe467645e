// Package bidom reduces the edge set of a bifiltered graph by deleting
// filtration-dominated and strongly filtration-dominated edges, while
// preserving the multi-parameter persistent homology of the induced
// flag complex.
//
// Given an edge list whose edges carry 2-D critical grades (g0, g1)
// drawn from a totally ordered value domain, bidom decides, for each
// edge, whether its removal changes the homotopy type of the
// bifiltered flag complex at every grade; if not, the edge is deleted.
// The output is a smaller edge list that yields the same minimal
// presentation as the input when fed to an external free-resolution
// tool.
//
// Subpackages, leaves first:
//
//	grade/      — 2-D critical grade algebra: join, product order, lex/colex
//	edge/       — undirected edge, filtered edge, edge list with sort orders
//	adjacency/  — per-vertex neighbor-to-grade index, common-neighbor enumeration
//	stripe/     — 1-D interval cover with O(log k) point-membership queries
//	region/     — non-domination regions built from orthogonal stripe families
//	domination/ — the strong and full domination tests
//	reduce/     — the removal driver: order, budget, survivor collection
//	edgeio/     — the shared edge-list text format, for external collaborators
//
// The removal decision itself lives in domination.Strong and
// domination.Full; reduce.Reduce is the entry point most callers want.
package bidom
