// Package chain decides whether a hand of dominoes can form a single closed
// chain, by reducing the hand to an undirected multigraph and applying
// Euler's circuit theorem.
//
// What:
//
//   - Adjacency(bones): pip value → sorted distinct neighboring pip values.
//     Parallel stones collapse to one adjacency entry; a double contributes
//     none (a pip is not its own neighbor for traversal purposes).
//   - Connected(bones, opts...): explicit-queue BFS from the first-seen pip,
//     reporting whether every pip of the hand was reached. An empty hand is
//     trivially connected.
//   - CanChain(bones, opts...): the verdict. An empty hand chains trivially;
//     otherwise the hand chains iff every pip's degree is even and the graph
//     is connected.
//
// Why:
//
//   - A closed chain consuming every stone is an Euler circuit of the hand's
//     multigraph, and Euler circuits exist exactly in connected graphs whose
//     vertices all have even degree.
//   - Degree accounting and adjacency are deliberately decoupled: a double
//     [a|a] adds two to a's degree (both halves touch the table) yet adds no
//     traversable edge, so it never fakes connectivity between components.
//
// Determinism:
//
//	Traversal starts at the first-seen pip of domino.Bones.Vertices and
//	neighbor lists are sorted ascending, so the visit sequence (observable
//	via WithOnVisit) is fully reproducible.
//
// Complexity (n = stones, V = distinct pips):
//
//   - Adjacency: O(n + V·d log d) time, O(V + n) memory.
//   - Connected: O(n + V) time, O(V) memory     (queue + visited set).
//   - CanChain:  O(n + V) time, O(V) memory.
//
// Usage:
//
//	ok, err := chain.CanChain(domino.Bones{
//	    domino.New(1, 2),
//	    domino.New(2, 3),
//	    domino.New(3, 1),
//	})
//	// ok == true: the triangle closes into a ring.
//
// Options:
//
//   - WithContext(ctx):  cancel a traversal via context.Context.
//   - WithStart(pip):    override the traversal start vertex.
//   - WithOnVisit(fn):   hook on each visited pip; an error aborts.
//
// Errors:
//
//   - ErrStartVertexNotFound  if WithStart names a pip absent from the hand.
//   - context errors          if the supplied context is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package chain
