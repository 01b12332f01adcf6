// File: methods_index.go
// Role: derived read-only bond views. Nothing here is cached; recompute
//       after any edit.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/latticekit/linalg"
)

const methodBondVector = "BondVector"

// BondsByOrigin returns SiteCount() lists; list i holds copies of every bond
// with From == i in original relative order.
// Complexity: O(|sites| + |bonds|·N).
func (g *Geometry[S, B]) BondsByOrigin() [][]Bond[B] {
	out := make([][]Bond[B], len(g.sites))
	for _, b := range g.bonds {
		out[b.From] = append(out[b.From], b.Clone())
	}

	return out
}

// BondsByDestination returns SiteCount() lists; list i holds copies of every
// bond with To == i in original relative order.
// Complexity: O(|sites| + |bonds|·N).
func (g *Geometry[S, B]) BondsByDestination() [][]Bond[B] {
	out := make([][]Bond[B], len(g.sites))
	for _, b := range g.bonds {
		out[b.To] = append(out[b.To], b.Clone())
	}

	return out
}

// BondVector returns the real-space displacement of b:
//
//	position(b.To) − position(b.From) + Σ_i b.Wrap[i]·a_i
//
// b need not belong to g; any bond with valid endpoints and a wrap of
// length N is accepted, which allows what-if queries with synthetic bonds.
//
// Errors:
//   - ErrDimensionMismatch: len(b.Wrap) != N.
//   - ErrInvalidIndex: an endpoint outside [0, SiteCount()).
//
// Complexity: O(D·N).
func (g *Geometry[S, B]) BondVector(b Bond[B]) ([]float64, error) {
	if len(b.Wrap) != len(g.vectors) {
		return nil, fmt.Errorf("%s: wrap length %d, want %d: %w", methodBondVector, len(b.Wrap), len(g.vectors), ErrDimensionMismatch)
	}
	n := len(g.sites)
	if b.From < 0 || b.From >= n || b.To < 0 || b.To >= n {
		return nil, fmt.Errorf("%s: bond %d→%d outside [0,%d): %w", methodBondVector, b.From, b.To, n, ErrInvalidIndex)
	}
	out, err := linalg.Sub(g.sites[b.To].Position, g.sites[b.From].Position)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBondVector, ErrDimensionMismatch, err)
	}
	for i, w := range b.Wrap {
		if w == 0 {
			continue
		}
		if err = linalg.AddScaled(out, float64(w), g.vectors[i]); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodBondVector, ErrDimensionMismatch, err)
		}
	}

	return out, nil
}
