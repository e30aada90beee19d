package chain_test

import (
	"fmt"

	"github.com/katalvlaran/dominoes/chain"
	"github.com/katalvlaran/dominoes/domino"
)

// ExampleCanChain demonstrates the verdict on a hand that closes into a
// ring and on one that leaves a dangling half.
func ExampleCanChain() {
	ring := domino.Bones{
		domino.New(1, 2),
		domino.New(2, 3),
		domino.New(3, 1),
	}
	dangling := domino.Bones{
		domino.New(1, 2),
		domino.New(4, 1),
		domino.New(2, 3),
	}

	ok, _ := chain.CanChain(ring)
	fmt.Println("triangle:", ok)
	ok, _ = chain.CanChain(dangling)
	fmt.Println("dangling:", ok)
	// Output:
	// triangle: true
	// dangling: false
}

// ExampleConnected shows the deterministic visit order of the BFS: start at
// the first-seen pip, neighbors in ascending order.
func ExampleConnected() {
	hand := domino.Bones{
		domino.New(3, 1),
		domino.New(1, 2),
		domino.New(2, 3),
	}

	ok, _ := chain.Connected(hand, chain.WithOnVisit(func(pip int) error {
		fmt.Println("visit", pip)
		return nil
	}))
	fmt.Println("connected:", ok)
	// Output:
	// visit 3
	// visit 1
	// visit 2
	// connected: true
}

// ExampleCanChain_emptyHand pins the vacuous case: no stones form the
// empty closed loop.
func ExampleCanChain_emptyHand() {
	ok, _ := chain.CanChain(nil)
	fmt.Println(ok)
	// Output:
	// true
}
