// File: methods_volume.go
// Role: operations specialized on the Bravais dimension N.
// Dispatch:
//   - One logical operation, one implementation per N, and a generic
//     Gram-determinant fallback for every combination not handled explicitly.

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latticekit/linalg"
)

const methodCellVolume = "CellVolume"

// Kind classifies a geometry by its number of periodic directions.
type Kind int

const (
	// KindOpen has no periodic direction (N = 0).
	KindOpen Kind = iota
	// KindChain is periodic along one direction.
	KindChain
	// KindPlanar is periodic along two directions.
	KindPlanar
	// KindSpatial is periodic along three directions.
	KindSpatial
	// KindHigher covers N > 3.
	KindHigher
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindChain:
		return "chain"
	case KindPlanar:
		return "planar"
	case KindSpatial:
		return "spatial"
	default:
		return "higher"
	}
}

// Kind reports the periodicity class of g.
func (g *Geometry[S, B]) Kind() Kind {
	if n := len(g.vectors); n <= int(KindSpatial) {
		return Kind(n)
	}

	return KindHigher
}

// CellVolume returns the N-dimensional volume spanned by the lattice
// vectors: a length for N=1, an area for N=2, a volume for N=3.
//
// Implementation:
//   - N=1: |a1|.
//   - N=2, D=2: |a1 × a2|.
//   - N=3, D=3: |a1 · (a2 × a3)|.
//   - otherwise: sqrt(det(Gram)), which covers embeddings such as a 2D cell
//     living in 3D space.
//
// Errors:
//   - ErrDimensionMismatch: N = 0 (there is no cell).
func (g *Geometry[S, B]) CellVolume() (float64, error) {
	n := len(g.vectors)
	switch {
	case n == 0:
		return 0, fmt.Errorf("%s: no lattice vectors: %w", methodCellVolume, ErrDimensionMismatch)
	case n == 1:
		return linalg.Norm(g.vectors[0]), nil
	case n == 2 && g.dim == 2:
		z, err := linalg.Cross2(g.vectors[0], g.vectors[1])
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %w", methodCellVolume, ErrDimensionMismatch, err)
		}
		return math.Abs(z), nil
	case n == 3 && g.dim == 3:
		c, err := linalg.Cross3(g.vectors[1], g.vectors[2])
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %w", methodCellVolume, ErrDimensionMismatch, err)
		}
		v, err := linalg.Dot(g.vectors[0], c)
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %w", methodCellVolume, ErrDimensionMismatch, err)
		}
		return math.Abs(v), nil
	}

	return gramVolume(g.vectors)
}

func gramVolume(vectors [][]float64) (float64, error) {
	gram, err := linalg.Gram(vectors)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", methodCellVolume, ErrDimensionMismatch, err)
	}
	det, err := linalg.Det(gram)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", methodCellVolume, ErrDimensionMismatch, err)
	}

	return math.Sqrt(math.Abs(det)), nil
}
