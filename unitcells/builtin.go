// SPDX-License-Identifier: MIT
// File: builtin.go
// Role: built-in unitcell constructors.
// AI-HINT (file):
//   - Every constructor returns a fresh value; callers may edit it freely.

package unitcells

import (
	"math"

	"github.com/katalvlaran/latticekit/lattice"
)

// Cell is the concrete unitcell type produced by this package.
type Cell = lattice.Unitcell[int, int]

// nn is the nearest-neighbor bond label.
const nn = 1

var sqrt3 = math.Sqrt(3)

// pair returns the bond a→b with wrap w and its returning bond.
func pair(a, b int, w ...int) []lattice.Bond[int] {
	fwd := lattice.NewBond(a, b, nn, w)

	return []lattice.Bond[int]{fwd, fwd.Reversed()}
}

func site(label int, pos ...float64) lattice.Site[int] {
	return lattice.NewSite(pos, label)
}

func must(uc *Cell, err error) *Cell {
	if err != nil {
		panic("unitcells: invalid built-in: " + err.Error())
	}

	return uc
}

func concat(groups ...[]lattice.Bond[int]) []lattice.Bond[int] {
	var out []lattice.Bond[int]
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// Chain is the one-dimensional chain with unit spacing.
func Chain() *Cell {
	return must(lattice.NewUnitcell(
		[][]float64{{1}},
		[]lattice.Site[int]{site(0, 0)},
		pair(0, 0, 1),
	))
}

// Square is the square lattice with unit spacing.
func Square() *Cell {
	return must(lattice.NewUnitcell(
		[][]float64{{1, 0}, {0, 1}},
		[]lattice.Site[int]{site(0, 0, 0)},
		concat(pair(0, 0, 1, 0), pair(0, 0, 0, 1)),
	))
}

// Triangular is the triangular lattice, a1 = (1, 0), a2 = (1/2, √3/2).
func Triangular() *Cell {
	return must(lattice.NewUnitcell(
		[][]float64{{1, 0}, {0.5, sqrt3 / 2}},
		[]lattice.Site[int]{site(0, 0, 0)},
		concat(pair(0, 0, 1, 0), pair(0, 0, 0, 1), pair(0, 0, 1, -1)),
	))
}

// Honeycomb is the honeycomb lattice with unit bond length:
// a1 = (3/2, √3/2), a2 = (3/2, −√3/2), sublattices at (0, 0) and (1, 0).
func Honeycomb() *Cell {
	return must(lattice.NewUnitcell(
		[][]float64{{1.5, sqrt3 / 2}, {1.5, -sqrt3 / 2}},
		[]lattice.Site[int]{site(0, 0, 0), site(1, 1, 0)},
		concat(pair(0, 1, 0, 0), pair(1, 0, 1, 0), pair(1, 0, 0, 1)),
	))
}

// Kagome is the kagome lattice with unit bond length:
// a1 = (2, 0), a2 = (1, √3), sublattices at (0, 0), (1, 0) and (1/2, √3/2).
func Kagome() *Cell {
	return must(lattice.NewUnitcell(
		[][]float64{{2, 0}, {1, sqrt3}},
		[]lattice.Site[int]{site(0, 0, 0), site(1, 1, 0), site(2, 0.5, sqrt3/2)},
		concat(
			pair(0, 1, 0, 0), pair(0, 2, 0, 0), pair(1, 2, 0, 0),
			pair(1, 0, 1, 0), pair(2, 0, 0, 1), pair(1, 2, 1, -1),
		),
	))
}

// Cubic is the simple cubic lattice with unit spacing.
func Cubic() *Cell {
	return must(lattice.NewUnitcell(
		[][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[]lattice.Site[int]{site(0, 0, 0, 0)},
		concat(pair(0, 0, 1, 0, 0), pair(0, 0, 0, 1, 0), pair(0, 0, 0, 0, 1)),
	))
}
