package chain_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dominoes/chain"
	"github.com/katalvlaran/dominoes/domino"
)

// ringHand builds a feasible cycle hand 0-1, 1-2, …, (n-1)-0.
func ringHand(n int) domino.Bones {
	hand := make(domino.Bones, 0, n)
	for i := 0; i < n; i++ {
		hand = append(hand, domino.New(i, (i+1)%n))
	}

	return hand
}

// BenchmarkCanChain_Ring measures the verdict on a long feasible cycle,
// which exercises both the parity scan and a full BFS.
func BenchmarkCanChain_Ring(b *testing.B) {
	const n = 10000
	hand := ringHand(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chain.CanChain(hand)
	}
}

// BenchmarkCanChain_OddParity measures the short-circuit path: one odd
// vertex fails the parity scan before any traversal.
func BenchmarkCanChain_OddParity(b *testing.B) {
	const n = 10000
	hand := append(ringHand(n), domino.New(0, n/2)) // breaks parity at two pips

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = chain.CanChain(hand)
	}
}

// BenchmarkAdjacency_RandomHand measures adjacency construction on a dense
// random double-six style hand.
func BenchmarkAdjacency_RandomHand(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	hand := make(domino.Bones, 5000)
	for i := range hand {
		hand[i] = domino.New(rng.Intn(50), rng.Intn(50))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chain.Adjacency(hand)
	}
}
