package domino

// Vertices returns the distinct pip values appearing in the hand, in
// first-seen order (the left half of a stone before its right half).
// An empty hand yields a nil slice.
//
// The order is not required for correctness anywhere, but it gives
// traversals a deterministic start vertex.
//
// Time: O(n), Memory: O(V).
func (b Bones) Vertices() []int {
	seen := make(map[int]struct{}, 2*len(b))
	var order []int
	var d Domino
	for _, d = range b {
		if _, ok := seen[d.L]; !ok {
			seen[d.L] = struct{}{}
			order = append(order, d.L)
		}
		if _, ok := seen[d.R]; !ok {
			seen[d.R] = struct{}{}
			order = append(order, d.R)
		}
	}

	return order
}

// Degrees tallies, for every pip value, how many domino halves bear it.
// Both halves of every stone count, so a double adds two to its single pip.
//
// The keys of the result are exactly Vertices(), and the values sum to
// 2·len(b) (handshake lemma).
//
// Time: O(n), Memory: O(V).
func (b Bones) Degrees() map[int]int {
	deg := make(map[int]int, 2*len(b))
	var d Domino
	for _, d = range b {
		deg[d.L]++
		deg[d.R]++
	}

	return deg
}
