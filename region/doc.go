// Package region builds the non-domination region R(e,w): the set of
// grades at which a candidate common neighbor w fails to dominate a
// candidate edge e, encoded as a union of two orthogonal stripe.Index
// families (vertical and horizontal).
//
// What
//
//	Build merges the two sorted neighbor sequences the adjacency
//	package exposes for e and w, emits one (p, q) pair per merge step,
//	and turns each pair into at most one vertical and one horizontal
//	stripe. Contains(g) answers "does w fail to dominate e at g?" with
//	one binary search per family; IsEmpty reports that w strongly
//	dominates e at every grade (both families empty).
//
// Why
//
//	Keeping the merge and stripe-family bookkeeping in its own package
//	lets domination's strong and full tests share a single region
//	builder instead of duplicating the merge logic, and lets the
//	region's correctness (scenario S4 in the design notes) be tested
//	independently of the domination decision it feeds.
package region
