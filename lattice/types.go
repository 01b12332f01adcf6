// SPDX-License-Identifier: MIT
// File: types.go
// Role: Site, Bond, Geometry, Unitcell, Lattice and the AddBond options.
//
// Ownership:
//   - Geometry exclusively owns its slices; every accessor hands out deep copies.
//   - A Lattice never shares site or bond storage with its source Unitcell.

package lattice

import (
	"slices"

	"github.com/katalvlaran/latticekit/linalg"
)

// Site is a point in real space with an opaque label.
type Site[S comparable] struct {
	// Position has length D, the spatial dimension of the owning geometry.
	Position []float64

	// Label is user data; it carries no structural meaning.
	Label S
}

// NewSite returns a Site with its own copy of pos.
func NewSite[S comparable](pos []float64, label S) Site[S] {
	return Site[S]{Position: slices.Clone(pos), Label: label}
}

// Clone returns a deep copy of s.
func (s Site[S]) Clone() Site[S] {
	return NewSite(s.Position, s.Label)
}

// Bond is a directed connection between two sites of one geometry.
//
// Wrap has length N (the Bravais dimension); component i is the signed
// number of unit-cell repeats crossed along lattice vector i to reach the
// destination copy.
type Bond[B comparable] struct {
	From  int
	To    int
	Label B
	Wrap  []int
}

// NewBond returns a Bond with its own copy of wrap.
func NewBond[B comparable](from, to int, label B, wrap []int) Bond[B] {
	return Bond[B]{From: from, To: to, Label: label, Wrap: cloneWrap(wrap)}
}

// Clone returns a deep copy of b.
func (b Bond[B]) Clone() Bond[B] {
	return NewBond(b.From, b.To, b.Label, b.Wrap)
}

// IsPeriodic reports whether any wrap component is non-zero.
func (b Bond[B]) IsPeriodic() bool {
	return !linalg.IsZero(b.Wrap)
}

// Reversed returns the returning bond: endpoints swapped, wrap negated.
func (b Bond[B]) Reversed() Bond[B] {
	return Bond[B]{From: b.To, To: b.From, Label: b.Label, Wrap: linalg.Negate(b.Wrap)}
}

// cloneWrap copies w, normalizing nil to an empty slice so that zero-length
// wraps compare equal regardless of origin.
func cloneWrap(w []int) []int {
	out := make([]int, len(w))
	copy(out, w)

	return out
}

// Geometry holds the three core lists shared by Unitcell and Lattice.
//
// dim is the spatial dimension D; the Bravais dimension N is len(vectors).
// minVectors is the lower bound on N: 1 for a Unitcell, 0 for a Lattice.
// The zero value is not usable; build one through NewUnitcell, NewLattice or Build.
type Geometry[S, B comparable] struct {
	dim        int
	minVectors int
	vectors    [][]float64
	sites      []Site[S]
	bonds      []Bond[B]
}

// Unitcell is the periodic generator of a lattice: N ≥ 1 linearly
// independent lattice vectors, intra-cell sites and inter-cell bonds.
type Unitcell[S, B comparable] struct {
	Geometry[S, B]
}

// Lattice is a finite realization of a unitcell, or a hand-built geometry.
//
// Its lattice vectors are the retained periodic directions; zero retained
// vectors means the lattice is fully open.
type Lattice[S, B comparable] struct {
	Geometry[S, B]

	// unitcell is a read-only provenance snapshot; nil for hand-built lattices.
	unitcell *Unitcell[S, B]
}

// BondOption configures AddBond.
type BondOption func(*bondConfig)

// bondConfig is resolved per AddBond call.
// Defaults: zero wrap of length N, returning bond added.
type bondConfig struct {
	wrap      []int
	wrapSet   bool
	addReturn bool
}

// WithWrap sets the bond wrap. Without it the wrap is the zero vector, i.e.
// both endpoints live in the same translated copy.
func WithWrap(wrap []int) BondOption {
	return func(c *bondConfig) {
		c.wrap = cloneWrap(wrap)
		c.wrapSet = true
	}
}

// WithoutReturnBond makes AddBond append only the forward bond.
func WithoutReturnBond() BondOption {
	return func(c *bondConfig) { c.addReturn = false }
}

// WithReturnBond sets whether AddBond appends the returning bond.
func WithReturnBond(add bool) BondOption {
	return func(c *bondConfig) { c.addReturn = add }
}
