// SPDX-License-Identifier: MIT
// Package: latticekit/lattice
//
// errors.go — sentinel errors shared by lattice and the expansion engine.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("%s: ...: %w", method, ErrX).
//   • Every failure is a caller/input error: nothing is retried and the
//     aggregate is left unmodified.

package lattice

import "errors"

// ErrInvalidIndex indicates a site, bond or lattice-vector index outside the
// current valid range.
var ErrInvalidIndex = errors.New("lattice: index out of range")

// ErrDimensionMismatch indicates two values that must share a spatial
// dimension D or a Bravais dimension N do not.
var ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

// ErrInvalidOrigin indicates an expansion origin that is not a site of the
// source unitcell.
var ErrInvalidOrigin = errors.New("lattice: invalid origin site")

// ErrInvalidExtent indicates a periodic-block extent below 1 along some direction.
var ErrInvalidExtent = errors.New("lattice: invalid extent")

// ErrDegenerateBasis indicates linearly dependent lattice vectors.
var ErrDegenerateBasis = errors.New("lattice: lattice vectors are linearly dependent")

// ErrNonFinite indicates a NaN or ±Inf coordinate.
var ErrNonFinite = errors.New("lattice: non-finite coordinate")

// ErrNilUnitcell indicates a nil *Unitcell where one is required.
var ErrNilUnitcell = errors.New("lattice: unitcell is nil")
