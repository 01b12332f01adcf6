// Package linalg provides the small dense kernels the lattice packages need:
// element-wise vector arithmetic over integer and float slices, Gram
// matrices, determinants, basis rank and cell volumes.
//
// What:
//
//   - Vector helpers (Add, Sub, Scale, Negate, AddScaled, Dot, Norm) that
//     work on plain slices so positions ([]float64) and wraps ([]int) share one
//     implementation.
//   - Basis helpers (Gram, Det, Rank, Cross2, Cross3) used to validate
//     lattice vectors and to compute unit-cell volumes.
//
// Errors:
//
//   - ErrDimensionMismatch: operands of different lengths.
//   - ErrNonSquare: Det called with a non-square matrix.
//
// All kernels are deterministic, allocate their outputs and never mutate
// their inputs unless the name says so (AddScaled).
package linalg
