// File: methods_access.go
// Role: read accessors and whole-list setters.
// Determinism:
//   - Lists are returned in stored order as deep copies.
// AI-HINT (file):
//   - Setters validate the resulting state before swapping it in; on error
//     the geometry is unchanged.

package lattice

import "fmt"

const (
	methodSetSites          = "SetSites"
	methodSetBonds          = "SetBonds"
	methodSetLatticeVectors = "SetLatticeVectors"
	methodLatticeVector     = "LatticeVector"
)

// Dim returns the spatial dimension D.
func (g *Geometry[S, B]) Dim() int { return g.dim }

// BravaisDim returns the Bravais dimension N, the number of lattice vectors.
func (g *Geometry[S, B]) BravaisDim() int { return len(g.vectors) }

// SiteCount returns the number of sites.
func (g *Geometry[S, B]) SiteCount() int { return len(g.sites) }

// BondCount returns the number of bonds.
func (g *Geometry[S, B]) BondCount() int { return len(g.bonds) }

// Sites returns a deep copy of the site list.
// Complexity: O(|sites|·D).
func (g *Geometry[S, B]) Sites() []Site[S] { return cloneSites(g.sites) }

// Bonds returns a deep copy of the bond list.
// Complexity: O(|bonds|·N).
func (g *Geometry[S, B]) Bonds() []Bond[B] { return cloneBonds(g.bonds) }

// LatticeVectors returns a deep copy of the lattice vectors.
func (g *Geometry[S, B]) LatticeVectors() [][]float64 { return cloneVectors(g.vectors) }

// Site returns a copy of site i, or ErrInvalidIndex.
func (g *Geometry[S, B]) Site(i int) (Site[S], error) {
	if i < 0 || i >= len(g.sites) {
		return Site[S]{}, fmt.Errorf("Site: %d outside [0,%d): %w", i, len(g.sites), ErrInvalidIndex)
	}

	return g.sites[i].Clone(), nil
}

// Bond returns a copy of bond i, or ErrInvalidIndex.
func (g *Geometry[S, B]) Bond(i int) (Bond[B], error) {
	if i < 0 || i >= len(g.bonds) {
		return Bond[B]{}, fmt.Errorf("Bond: %d outside [0,%d): %w", i, len(g.bonds), ErrInvalidIndex)
	}

	return g.bonds[i].Clone(), nil
}

// LatticeVector returns a copy of lattice vector i (0-based), or
// ErrInvalidIndex when i ≥ N.
func (g *Geometry[S, B]) LatticeVector(i int) ([]float64, error) {
	if i < 0 || i >= len(g.vectors) {
		return nil, fmt.Errorf("%s: %d outside [0,%d): %w", methodLatticeVector, i, len(g.vectors), ErrInvalidIndex)
	}
	out := make([]float64, len(g.vectors[i]))
	copy(out, g.vectors[i])

	return out, nil
}

// A1 returns the first lattice vector.
func (g *Geometry[S, B]) A1() ([]float64, error) { return g.LatticeVector(0) }

// A2 returns the second lattice vector.
func (g *Geometry[S, B]) A2() ([]float64, error) { return g.LatticeVector(1) }

// A3 returns the third lattice vector.
func (g *Geometry[S, B]) A3() ([]float64, error) { return g.LatticeVector(2) }

// SetSites replaces the site list.
//
// Implementation:
//   - Stage 1: Deep-copy the input.
//   - Stage 2: Validate positions against D and the existing bonds against the
//     new site count.
//   - Stage 3: Swap in.
//
// Errors:
//   - ErrDimensionMismatch, ErrNonFinite: bad positions.
//   - ErrInvalidIndex: an existing bond would dangle.
func (g *Geometry[S, B]) SetSites(sites []Site[S]) error {
	next := cloneSites(sites)
	if err := validateSites(g.dim, next); err != nil {
		return fmt.Errorf("%s: %w", methodSetSites, err)
	}
	if err := validateBonds(len(next), len(g.vectors), g.bonds); err != nil {
		return fmt.Errorf("%s: %w", methodSetSites, err)
	}
	g.sites = next

	return nil
}

// SetBonds replaces the bond list after validating indices and wrap lengths.
func (g *Geometry[S, B]) SetBonds(bonds []Bond[B]) error {
	next := cloneBonds(bonds)
	if err := validateBonds(len(g.sites), len(g.vectors), next); err != nil {
		return fmt.Errorf("%s: %w", methodSetBonds, err)
	}
	g.bonds = next

	return nil
}

// SetLatticeVectors replaces the lattice vectors. The number of vectors may
// change only if every bond wrap already has the new length.
//
// Errors:
//   - ErrDimensionMismatch: wrong lengths, or no vectors on a Unitcell.
//   - ErrDegenerateBasis, ErrNonFinite.
func (g *Geometry[S, B]) SetLatticeVectors(vectors [][]float64) error {
	next := cloneVectors(vectors)
	if err := validateVectors(g.dim, g.minVectors, next); err != nil {
		return fmt.Errorf("%s: %w", methodSetLatticeVectors, err)
	}
	if err := validateBonds(len(g.sites), len(next), g.bonds); err != nil {
		return fmt.Errorf("%s: %w", methodSetLatticeVectors, err)
	}
	g.vectors = next

	return nil
}

func cloneVectors(vs [][]float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = make([]float64, len(v))
		copy(out[i], v)
	}

	return out
}

func cloneSites[S comparable](ss []Site[S]) []Site[S] {
	out := make([]Site[S], len(ss))
	for i, s := range ss {
		out[i] = s.Clone()
	}

	return out
}

func cloneBonds[B comparable](bs []Bond[B]) []Bond[B] {
	out := make([]Bond[B], len(bs))
	for i, b := range bs {
		out[i] = b.Clone()
	}

	return out
}
