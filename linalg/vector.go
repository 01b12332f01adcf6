// SPDX-License-Identifier: MIT
// File: vector.go
// Role: element-wise vector kernels shared by positions ([]float64) and wraps ([]int).
// Determinism:
//   - Fixed left-to-right loops; no map iteration.

package linalg

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for the generic vector kernels.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a+b as a fresh slice.
// Complexity: O(n).
func Add[T Number](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Add: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a-b as a fresh slice.
// Complexity: O(n).
func Sub[T Number](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Sub: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Scale returns alpha*a as a fresh slice.
func Scale[T Number](a []T, alpha T) []T {
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = alpha * v
	}

	return out
}

// Negate returns -a as a fresh slice.
func Negate[T Number](a []T) []T {
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = -v
	}

	return out
}

// IsZero reports whether every component of a is zero (true for empty a).
func IsZero[T Number](a []T) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}

	return true
}

// AddScaled performs dst += alpha*v in place (the classic AXPY update).
// Complexity: O(n), no allocations.
func AddScaled(dst []float64, alpha float64, v []float64) error {
	if len(dst) != len(v) {
		return fmt.Errorf("AddScaled: len %d vs %d: %w", len(dst), len(v), ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] += alpha * v[i]
	}

	return nil
}

// Dot returns the inner product of a and b.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Norm returns the Euclidean length of a.
func Norm(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// AllFinite reports whether a contains no NaN or ±Inf.
func AllFinite(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// FloorDivMod splits a into q*n + r with 0 ≤ r < n (n > 0).
// Unlike Go's / and %, the quotient rounds toward -∞, which is what
// periodic index folding needs for negative offsets.
func FloorDivMod(a, n int) (q, r int) {
	q, r = a/n, a%n
	if r < 0 {
		q--
		r += n
	}

	return q, r
}
