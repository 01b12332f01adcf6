// SPDX-License-Identifier: MIT
// File: basis.go
// Role: Gram matrices, determinants, rank and cross products over small bases.
// Policy:
//   - Inputs are row vectors ([][]float64); outputs are freshly allocated.
//   - Partial pivoting is used in Det and Rank; pivots below the tolerance
//     are treated as zero.

package linalg

import (
	"fmt"
	"math"
)

// DefaultTolerance is the relative pivot threshold used by Rank when the
// caller passes tol <= 0.
const DefaultTolerance = 1e-9

// Gram returns the matrix G[i][j] = <v_i, v_j> for the given row vectors.
//
// Errors:
//   - ErrDimensionMismatch if the vectors do not share one length.
//
// Complexity: O(n²·d).
func Gram(vectors [][]float64) ([][]float64, error) {
	n := len(vectors)
	g := make([][]float64, n)
	for i := 0; i < n; i++ {
		g[i] = make([]float64, n)
	}
	var (
		i, j int
		dot  float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if dot, err = Dot(vectors[i], vectors[j]); err != nil {
				return nil, fmt.Errorf("Gram: (%d,%d): %w", i, j, err)
			}
			g[i][j], g[j][i] = dot, dot
		}
	}

	return g, nil
}

// Det returns the determinant of a square matrix via Gaussian elimination
// with partial pivoting. The input is not modified.
//
// Errors:
//   - ErrNonSquare if any row length differs from the row count.
//
// Complexity: O(n³) time, O(n²) space.
func Det(m [][]float64) (float64, error) {
	n := len(m)
	a := make([][]float64, n)
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("Det: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		a[i] = append([]float64(nil), row...)
	}

	det := 1.0
	var i, j, k, p int
	for k = 0; k < n; k++ {
		// select the largest pivot in column k
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > math.Abs(a[p][k]) {
				p = i
			}
		}
		if a[p][k] == 0 {
			return 0, nil
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			det = -det
		}
		det *= a[k][k]
		for i = k + 1; i < n; i++ {
			f := a[i][k] / a[k][k]
			for j = k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
		}
	}

	return det, nil
}

// Rank returns the number of linearly independent row vectors.
// tol is relative to the largest absolute entry; tol <= 0 selects DefaultTolerance.
//
// Errors:
//   - ErrDimensionMismatch if the rows do not share one length.
//
// Complexity: O(n²·d).
func Rank(vectors [][]float64, tol float64) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	d := len(vectors[0])
	a := make([][]float64, len(vectors))
	scale := 0.0
	for i, v := range vectors {
		if len(v) != d {
			return 0, fmt.Errorf("Rank: row %d has length %d, want %d: %w", i, len(v), d, ErrDimensionMismatch)
		}
		a[i] = append([]float64(nil), v...)
		for _, x := range v {
			scale = math.Max(scale, math.Abs(x))
		}
	}
	if scale == 0 {
		return 0, nil
	}
	eps := tol * scale

	rank := 0
	for col := 0; col < d && rank < len(a); col++ {
		p := rank
		for i := rank + 1; i < len(a); i++ {
			if math.Abs(a[i][col]) > math.Abs(a[p][col]) {
				p = i
			}
		}
		if math.Abs(a[p][col]) <= eps {
			continue
		}
		a[p], a[rank] = a[rank], a[p]
		for i := rank + 1; i < len(a); i++ {
			f := a[i][col] / a[rank][col]
			for j := col; j < d; j++ {
				a[i][j] -= f * a[rank][j]
			}
		}
		rank++
	}

	return rank, nil
}

// Cross2 returns the z-component of the 2D cross product a×b.
func Cross2(a, b []float64) (float64, error) {
	if len(a) != 2 || len(b) != 2 {
		return 0, fmt.Errorf("Cross2: len %d, %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return a[0]*b[1] - a[1]*b[0], nil
}

// Cross3 returns the 3D cross product a×b.
func Cross3(a, b []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, fmt.Errorf("Cross3: len %d, %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}
