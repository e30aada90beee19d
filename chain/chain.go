// Package chain implements the closed-chain feasibility verdict for a hand
// of dominoes: Euler's circuit theorem applied to the hand's multigraph.
package chain

import (
	"fmt"

	"github.com/katalvlaran/dominoes/domino"
)

// walker encapsulates mutable BFS state for one connectivity check.
type walker struct {
	adj     map[int][]int
	opts    Options
	queue   []int
	visited map[int]bool
}

// Connected reports whether the hand's multigraph is connected: every pip
// value reachable from the traversal start. An empty hand has an empty
// vertex set and is trivially connected.
//
// Traversal is an explicit-queue BFS — no recursion, so the distinct pip
// count never bounds the call stack. A pip already marked visited is never
// re-enqueued, which keeps the walk finite on cyclic adjacency.
func Connected(bones domino.Bones, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return connected(bones, o)
}

// connected runs the BFS under already-resolved options.
func connected(bones domino.Bones, o Options) (bool, error) {
	order := bones.Vertices()
	if len(order) == 0 {
		return true, nil // no vertices: trivially connected
	}

	start := order[0]
	if o.hasStart {
		start = o.Start
		if !hasPip(order, start) {
			return false, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
		}
	}

	w := &walker{
		adj:     Adjacency(bones),
		opts:    o,
		queue:   make([]int, 0, len(order)),
		visited: make(map[int]bool, len(order)),
	}
	w.enqueue(start)
	if err := w.loop(); err != nil {
		return false, err
	}

	return len(w.visited) == len(order), nil
}

// CanChain reports whether every stone of the hand can be laid into one
// closed chain: consecutive stones sharing a pip and the last pip matching
// the first.
//
// The empty hand chains trivially. Otherwise the verdict is Euler's
// theorem: true iff every pip's degree is even and the multigraph is
// connected. Parity is checked first purely as a short-circuit — both
// conditions must hold, so the order is unobservable in the result.
//
// CanChain is total over well-formed input: any Bones value, including
// doubles, duplicate stones, and isolated stones, yields a definite
// boolean. An error can arise only from the supplied context, an OnVisit
// hook, or a WithStart pip absent from the hand.
func CanChain(bones domino.Bones, opts ...Option) (bool, error) {
	if len(bones) == 0 {
		return true, nil // the empty chain is a closed loop
	}

	for _, deg := range bones.Degrees() {
		if deg%2 != 0 {
			return false, nil
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return connected(bones, o)
}

// enqueue marks pip visited and adds it to the queue.
func (w *walker) enqueue(pip int) {
	w.visited[pip] = true
	w.queue = append(w.queue, pip)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		pip := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(pip); err != nil {
			return fmt.Errorf("chain: OnVisit error at %d: %w", pip, err)
		}
		for _, nbr := range w.adj[pip] {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}

	return nil
}

// hasPip reports whether pip occurs in the vertex order.
func hasPip(order []int, pip int) bool {
	for _, v := range order {
		if v == pip {
			return true
		}
	}

	return false
}
