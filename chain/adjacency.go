package chain

import (
	"sort"

	"github.com/katalvlaran/dominoes/domino"
)

// pipPair is a normalized (lo ≤ hi) undirected vertex pair, used to collapse
// parallel stones to a single adjacency entry.
type pipPair struct {
	lo, hi int
}

// normalize returns the pair with its pips in ascending order.
func normalize(a, b int) pipPair {
	if a > b {
		a, b = b, a
	}

	return pipPair{lo: a, hi: b}
}

// Adjacency maps every pip value of the hand to its distinct neighboring
// pip values, sorted ascending.
//
// Every pip of the hand appears as a key, so a pip touched only by doubles
// maps to an empty list. Doubles contribute no entry (a pip is not its own
// neighbor), and parallel stones between the same two pips collapse to one
// entry — traversal cares about reachability, not edge multiplicity. Degree
// accounting, which must see both of those, lives in domino.Bones.Degrees.
//
// Time: O(n + V·d log d), Memory: O(V + n).
func Adjacency(bones domino.Bones) map[int][]int {
	adj := make(map[int][]int, 2*len(bones))
	seen := make(map[pipPair]struct{}, len(bones))

	var d domino.Domino
	for _, d = range bones {
		// Register both endpoints, isolated or not.
		if _, ok := adj[d.L]; !ok {
			adj[d.L] = nil
		}
		if _, ok := adj[d.R]; !ok {
			adj[d.R] = nil
		}
		if d.IsDouble() {
			continue // self-loop: degree only, no traversable edge
		}
		pair := normalize(d.L, d.R)
		if _, dup := seen[pair]; dup {
			continue // parallel stone: reachability already recorded
		}
		seen[pair] = struct{}{}
		adj[d.L] = append(adj[d.L], d.R)
		adj[d.R] = append(adj[d.R], d.L)
	}

	// Deterministic neighbor order for reproducible traversals.
	for pip := range adj {
		sort.Ints(adj[pip])
	}

	return adj
}
