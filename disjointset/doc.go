// Package disjointset implements a union-find (disjoint-set) structure over
// a fixed universe of integer element ids 0..n-1.
//
// What:
//
//   - DisjointSet tracks a partition of n elements into disjoint sets.
//   - FindSet locates a set representative with full path compression.
//   - UnionSet / LinkSet merge sets using union by rank.
//   - UniqueLabeling / NumSets report connected components deterministically.
//
// Why:
//
//   - Graph topology analysis: connectivity, cycle detection, component counts.
//   - Incremental edge processing: UnionSet returning false signals that an
//     edge closes a cycle.
//
// Complexity:
//
//   - FindSet / UnionSet / SameSet: amortized O(α(n)) — effectively constant,
//     guaranteed by combining path compression with union by rank.
//   - MakeSets / UniqueLabeling / NumSets: O(n).
//
// Errors:
//
//   - ErrNonPositiveElements: constructor called with n <= 0.
//   - ErrElementOutOfRange: element id outside [0, n).
//   - ErrNotRoot: LinkSet argument is not a set root.
//   - ErrSameRoot: LinkSet called with identical roots.
package disjointset
