// Package stripe implements the 1-D interval cover used to answer
// "does the point (x,y) lie under at least one of these half-open
// axis-aligned stripes?" in O(log k) after an O(k log k) build.
//
// What
//
//   - Stripe: a half-open strip ((lo, hi), y0) covering every point
//     (x, y') with lo <= x < hi and y' >= y0.
//   - Index: a pre-sorted arrangement built from a set of Stripes via a
//     sweep over their start/end events, answering Contains(x, y) with
//     one binary search.
//
// Why
//
//	package region builds two Index values per candidate-edge/dominator
//	pair (one for the vertical stripe family, one for the horizontal),
//	and package domination's full test queries them once per test
//	grade; keeping the sweep-and-binary-search machinery here, isolated
//	from the 2-D region semantics, keeps both testable independently
//	(see scenario S3 and property P8 in the design notes).
//
// Build algorithm
//
//  1. Emit Start(lo, y0) / End(hi, y0) events per stripe.
//  2. Sort events by endpoint, grouping every event that shares an
//     endpoint into one batch (order within a batch does not affect
//     the result: Starts and Ends are applied as net deltas to a
//     multiset of active y0 values before the batch's record is taken).
//  3. At each distinct endpoint, record (endpoint, min(active y0)),
//     or the caller-supplied sentinel maxValue if no y0 is active.
//
// Query
//
//	Contains(x, y) binary-searches for the last record whose endpoint
//	is <= x and reports record.minY <= y; an x before the first
//	recorded endpoint never matches.
package stripe
