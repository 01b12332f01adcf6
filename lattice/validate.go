// SPDX-License-Identifier: MIT
// File: validate.go
// Role: invariant checks shared by constructors, setters and Validate().
// Priority (first failing class wins):
//   dimension D → vector shape → finiteness → basis rank → sites → bonds.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/latticekit/linalg"
)

// Validate checks every invariant of g and returns the first violation.
// Complexity: O(N²·D + |sites|·D + |bonds|·N).
func (g *Geometry[S, B]) Validate() error {
	return g.validate()
}

func (g *Geometry[S, B]) validate() error {
	if g.dim < 1 {
		return fmt.Errorf("spatial dimension %d (must be ≥ 1): %w", g.dim, ErrDimensionMismatch)
	}
	if err := validateVectors(g.dim, g.minVectors, g.vectors); err != nil {
		return err
	}
	if err := validateSites(g.dim, g.sites); err != nil {
		return err
	}

	return validateBonds(len(g.sites), len(g.vectors), g.bonds)
}

func validateVectors(dim, minVectors int, vectors [][]float64) error {
	if len(vectors) < minVectors {
		return fmt.Errorf("%d lattice vectors, need at least %d: %w", len(vectors), minVectors, ErrDimensionMismatch)
	}
	if len(vectors) > dim {
		return fmt.Errorf("%d lattice vectors in %d dimensions: %w", len(vectors), dim, ErrDegenerateBasis)
	}
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("lattice vector %d has length %d, want %d: %w", i, len(v), dim, ErrDimensionMismatch)
		}
		if !linalg.AllFinite(v) {
			return fmt.Errorf("lattice vector %d: %w", i, ErrNonFinite)
		}
	}
	rank, err := linalg.Rank(vectors, linalg.DefaultTolerance)
	if err != nil {
		return fmt.Errorf("lattice vectors: %w: %w", ErrDimensionMismatch, err)
	}
	if rank != len(vectors) {
		return fmt.Errorf("rank %d of %d lattice vectors: %w", rank, len(vectors), ErrDegenerateBasis)
	}

	return nil
}

func validateSites[S comparable](dim int, sites []Site[S]) error {
	for i, s := range sites {
		if len(s.Position) != dim {
			return fmt.Errorf("site %d has position length %d, want %d: %w", i, len(s.Position), dim, ErrDimensionMismatch)
		}
		if !linalg.AllFinite(s.Position) {
			return fmt.Errorf("site %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

func validateBonds[B comparable](nSites, bravais int, bonds []Bond[B]) error {
	for i, b := range bonds {
		if b.From < 0 || b.From >= nSites {
			return fmt.Errorf("bond %d: from=%d outside [0,%d): %w", i, b.From, nSites, ErrInvalidIndex)
		}
		if b.To < 0 || b.To >= nSites {
			return fmt.Errorf("bond %d: to=%d outside [0,%d): %w", i, b.To, nSites, ErrInvalidIndex)
		}
		if len(b.Wrap) != bravais {
			return fmt.Errorf("bond %d: wrap length %d, want %d: %w", i, len(b.Wrap), bravais, ErrDimensionMismatch)
		}
	}

	return nil
}
