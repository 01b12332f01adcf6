// SPDX-License-Identifier: MIT
// File: api.go
// Role: constructors for Unitcell and Lattice.
// Policy:
//   - NewUnitcell/NewLattice deep-copy caller slices, Build takes ownership.
//   - Every constructor validates the full invariant set before returning.

package lattice

import "fmt"

const (
	methodNewUnitcell = "NewUnitcell"
	methodNewLattice  = "NewLattice"
	methodBuild       = "Build"
)

// NewUnitcell creates a Unitcell from lattice vectors, sites and bonds.
//
// Implementation:
//   - Stage 1: Require at least one lattice vector; D is len(vectors[0]).
//   - Stage 2: Deep-copy all inputs so the caller keeps no aliases.
//   - Stage 3: Validate the invariant set.
//
// Errors:
//   - ErrDimensionMismatch: no vectors, ragged vectors, wrong position/wrap lengths.
//   - ErrDegenerateBasis: linearly dependent lattice vectors.
//   - ErrNonFinite: NaN/Inf coordinates.
//   - ErrInvalidIndex: a bond endpoint outside [0, len(sites)).
//
// Complexity:
//   - Time O(N²·D + |sites|·D + |bonds|·N), Space O(input).
func NewUnitcell[S, B comparable](vectors [][]float64, sites []Site[S], bonds []Bond[B]) (*Unitcell[S, B], error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%s: a unitcell needs at least one lattice vector: %w", methodNewUnitcell, ErrDimensionMismatch)
	}
	g := Geometry[S, B]{
		dim:        len(vectors[0]),
		minVectors: 1,
		vectors:    cloneVectors(vectors),
		sites:      cloneSites(sites),
		bonds:      cloneBonds(bonds),
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewUnitcell, err)
	}

	return &Unitcell[S, B]{Geometry: g}, nil
}

// NewLattice creates a hand-built Lattice of spatial dimension dim.
// vectors are the retained periodic directions and may be empty; the
// lattice has no provenance unitcell.
//
// Errors: same classes as NewUnitcell; dim < 1 is ErrDimensionMismatch.
//
// Complexity: O(N²·D + |sites|·D + |bonds|·N).
func NewLattice[S, B comparable](dim int, vectors [][]float64, sites []Site[S], bonds []Bond[B]) (*Lattice[S, B], error) {
	g := Geometry[S, B]{
		dim:     dim,
		vectors: cloneVectors(vectors),
		sites:   cloneSites(sites),
		bonds:   cloneBonds(bonds),
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewLattice, err)
	}

	return &Lattice[S, B]{Geometry: g}, nil
}

// Build assembles a Lattice generated from source. It takes ownership of
// the vectors, sites and bonds slices (no copy) and records a clone of source
// as provenance. D is taken from source.
//
// This is the entry point used by the expansion engine.
//
// Errors:
//   - ErrNilUnitcell: source is nil.
//   - otherwise the same classes as NewLattice.
//
// Complexity: O(|source| + N²·D + |sites|·D + |bonds|·N).
func Build[S, B comparable](source *Unitcell[S, B], vectors [][]float64, sites []Site[S], bonds []Bond[B]) (*Lattice[S, B], error) {
	if source == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilUnitcell)
	}
	if vectors == nil {
		vectors = [][]float64{}
	}
	if sites == nil {
		sites = []Site[S]{}
	}
	if bonds == nil {
		bonds = []Bond[B]{}
	}
	g := Geometry[S, B]{dim: source.dim, vectors: vectors, sites: sites, bonds: bonds}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return &Lattice[S, B]{Geometry: g, unitcell: source.Clone()}, nil
}

// Unitcell returns the provenance unitcell, or nil for a hand-built lattice.
// The returned value is shared with every clone of l and must be treated as read-only.
func (l *Lattice[S, B]) Unitcell() *Unitcell[S, B] {
	return l.unitcell
}

// IsOpen reports whether no periodic direction remains (N == 0).
func (l *Lattice[S, B]) IsOpen() bool {
	return len(l.vectors) == 0
}
