// Package dominoes decides whether a hand of dominoes can be laid out as a
// single closed ring — every stone used once, touching halves matching, and
// the final half matching the first.
//
// 🁫 How does it work?
//
//	Each distinct pip value becomes a graph vertex and each domino an
//	undirected edge between the two values it bears. A closed chain that
//	consumes every stone is exactly an Euler circuit of that multigraph,
//	which exists iff the graph is connected and every vertex has even degree.
//	The library implements that reduction and nothing else:
//		• domino/ — the Domino value type, the Bones multiset, and the
//		  derived vertex-set and degree queries
//		• chain/  — adjacency construction, BFS connectivity, and the
//		  CanChain feasibility verdict
//
// ✨ Why choose dominoes?
//
//   - Minimal API – one value type, one multiset, one verdict function
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – first-seen vertex order, sorted adjacency
//   - Extensible – OnVisit hooks and context cancellation on traversal
//
// Quick ASCII example:
//
//	    [1|2] [2|3] [3|1]
//
//	chains into the ring 1-2 · 2-3 · 3-1 and back to 1, so CanChain
//	reports true.
//
// Dive into the examples/ directory for double-six hands and broken hands.
//
//	go get github.com/katalvlaran/dominoes
package dominoes
