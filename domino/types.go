// Package domino declares the Domino and Bones types, their sentinel
// errors, and the boundary constructors FromPair and FromPairs.
package domino

import (
	"errors"
	"fmt"
)

// Sentinel errors for domino construction.
var (
	// ErrInvalidPair indicates a raw pair did not contain exactly two pip values.
	ErrInvalidPair = errors.New("domino: pair must contain exactly two pip values")
)

// Domino is a single stone: an unordered pair of pip values.
//
// L and R name the two halves for storage only — [1|2] and [2|1] are the
// same domino, and Equal treats them as such. Any integer is a valid pip;
// the classic double-six set merely happens to use 0–6.
type Domino struct {
	// L is the pip value on one half.
	L int

	// R is the pip value on the other half.
	R int
}

// New returns the domino bearing pips l and r.
func New(l, r int) Domino { return Domino{L: l, R: r} }

// IsDouble reports whether both halves bear the same pip value.
// In graph terms a double is a self-loop: it adds two to its pip's degree
// but never bridges two distinct pips.
func (d Domino) IsDouble() bool { return d.L == d.R }

// Flip returns the same stone with its halves swapped.
func (d Domino) Flip() Domino { return Domino{L: d.R, R: d.L} }

// Equal reports whether d and o are the same stone, ignoring orientation.
func (d Domino) Equal(o Domino) bool { return d == o || d == o.Flip() }

// String renders the stone as [L|R].
func (d Domino) String() string { return fmt.Sprintf("[%d|%d]", d.L, d.R) }

// Bones is a multiset of dominoes — the raw material of a chain.
//
// Duplicates are semantically distinct stones (two [2|4] entries are two
// edges, both of which a chain must consume), and element order carries no
// meaning beyond the determinism of derived queries.
type Bones []Domino

// FromPair converts a raw two-element slice into a Domino.
// Returns ErrInvalidPair if the slice does not hold exactly two values.
func FromPair(pair []int) (Domino, error) {
	if len(pair) != 2 {
		return Domino{}, fmt.Errorf("%w: got %d", ErrInvalidPair, len(pair))
	}

	return Domino{L: pair[0], R: pair[1]}, nil
}

// FromPairs converts a slice of raw pairs into Bones, validating each pair.
// The first malformed pair aborts conversion with a wrapped ErrInvalidPair
// identifying its position.
func FromPairs(pairs [][]int) (Bones, error) {
	bones := make(Bones, 0, len(pairs))
	for i, pair := range pairs {
		d, err := FromPair(pair)
		if err != nil {
			return nil, fmt.Errorf("domino: pair #%d: %w", i, err)
		}
		bones = append(bones, d)
	}

	return bones, nil
}
