// Package grade defines the 2-D critical grade algebra that every other
// package in this module builds on: a totally ordered value domain V,
// the pair Grade[V] = (v0, v1), componentwise join, the product order,
// and the lexicographic / colexicographic total orders used for sorting.
//
// What
//
//   - Value: the constraint satisfied by any concrete grade coordinate
//     (int, int64, an ordered float wrapper, ...).
//   - Grade[V]: a pair of Values with Join (componentwise max), Lte/Gte
//     (product order), Lt, Incomparable, and MinWith/MaxWith/Zero sentinels.
//   - CmpLex and CmpColex: the two total orders used to sort filtered edges
//     (lex is the default; colex compares the second coordinate first).
//
// Why
//
//   - Domination decisions (domination.Strong, domination.Full) and the
//     removal driver (reduce.Reduce) are entirely expressed in terms of
//     Join and Lte; keeping the algebra in one small package keeps those
//     decisions readable and keeps the saturation/sentinel rules (V.max
//     absorbing under Join) in a single, well-tested place.
//
// Determinism
//
//	Grade comparisons are total and panic-free for any V satisfying
//	constraints.Ordered; Join and Lte never allocate.
package grade
