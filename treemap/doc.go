// Package treemap provides an ordered map backed by an AA tree, a balanced
// binary search tree that encodes its balance in integer node levels and
// restores them with two small rotations, skew and split.
//
// Entries are ordered by a caller-supplied comparator and iterate in
// ascending key order through bidirectional iterators. Lookup, insertion and
// erasure run in O(log n); Begin is O(1) through a cached leftmost node.
//
// A Map is not safe for concurrent use. Callers that share one across
// goroutines must serialize every access, reads included, with their own
// lock.
package treemap
