// Package domino defines the Domino value type and the Bones multiset,
// plus the derived queries (vertex set, degree counts) that chain analysis
// is built on.
//
// What:
//
//   - Domino: an unordered pair of integer pip values; a double bears the
//     same value on both halves.
//   - Bones: a multiset of dominoes — duplicates are distinct stones, and
//     order carries no meaning.
//   - Vertices: the distinct pip values of a hand, in first-seen order.
//   - Degrees: pip value → count of domino halves bearing it; a double
//     contributes two to its single pip.
//   - FromPair / FromPairs: boundary constructors for callers holding raw
//     integer slices rather than Domino values.
//
// Why:
//
//   - In graph terms a pip value is a vertex and a domino an undirected
//     edge, so Vertices and Degrees are exactly the vertex set and degree
//     sequence of the hand's multigraph.
//   - Even degrees plus connectivity decide closed-chain feasibility
//     (Euler's theorem); see package chain for the verdict.
//
// Complexity:
//
//   - Vertices: O(n) time, O(V) memory      (n = stones, V = distinct pips).
//   - Degrees:  O(n) time, O(V) memory.
//
// Errors:
//
//   - ErrInvalidPair: a raw pair does not contain exactly two pip values.
package domino
