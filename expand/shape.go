// SPDX-License-Identifier: MIT
// File: shape.go
// Role: shape-bounded expansion and the sphere/box membership predicates.
// Policy:
//   - Membership is strict: points on the boundary are outside.
//   - Only the region connected to the origin through admitted sites is
//     generated; a disjoint part of the shape is never reached.

package expand

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latticekit/lattice"
	"github.com/katalvlaran/latticekit/linalg"
)

const (
	methodShape  = "Shape"
	methodSphere = "Sphere"
	methodBox    = "Box"
)

// Predicate reports whether a real-space position lies inside a region.
type Predicate func(pos []float64) bool

// SphereMembership returns ‖pos − center‖ < radius. Positions of a different
// length than center are outside.
func SphereMembership(center []float64, radius float64) Predicate {
	c := append([]float64(nil), center...)

	return func(pos []float64) bool {
		d, err := linalg.Sub(pos, c)
		if err != nil {
			return false
		}

		return linalg.Norm(d) < radius
	}
}

// BoxMembership returns |pos_k − center_k| < dims_k/2 for every k, an
// axis-aligned box of side lengths dims centered at center.
func BoxMembership(center, dims []float64) Predicate {
	c := append([]float64(nil), center...)
	half := linalg.Scale(dims, 0.5)

	return func(pos []float64) bool {
		if len(pos) != len(c) || len(half) != len(c) {
			return false
		}
		for k := range pos {
			if math.Abs(pos[k]-c[k]) >= half[k] {
				return false
			}
		}

		return true
	}
}

// Shape generates every site copy inside contains that is connected to the
// origin site (WithOrigin, default 0) of the untranslated cell through
// sites that are also inside.
//
// Behavior highlights:
//   - When the origin itself is outside, the result has no sites.
//   - The result is fully open: N = 0 and every bond has an empty wrap.
//   - An unbounded predicate stops at MaxSites with ErrSiteLimit.
//
// Errors:
//   - lattice.ErrNilUnitcell, lattice.ErrInvalidOrigin.
//   - ErrInvalidShape: contains is nil.
//   - ErrOptionViolation, ErrSiteLimit, or the context error.
//
// Complexity: O(V·(deg + N + P)) for V visited copies and predicate cost P.
func Shape[S, B comparable](uc *lattice.Unitcell[S, B], contains Predicate, opts ...Option) (*lattice.Lattice[S, B], error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: %w", methodShape, lattice.ErrNilUnitcell)
	}
	if contains == nil {
		return nil, fmt.Errorf("%s: nil predicate: %w", methodShape, ErrInvalidShape)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodShape, err)
	}
	if err = checkOrigin(uc, o.Origin); err != nil {
		return nil, fmt.Errorf("%s: %w", methodShape, err)
	}

	w := newWalker(uc, o, func(pos []float64, _ int) bool { return contains(pos) })
	out, err := w.run()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodShape, err)
	}
	o.Logger.Debug("expanded by shape",
		"origin", o.Origin,
		"sites", out.SiteCount(),
		"bonds", out.BondCount(),
	)

	return out, nil
}

// Sphere is Shape with SphereMembership(center, radius).
//
// Errors:
//   - lattice.ErrDimensionMismatch: len(center) != D.
//   - lattice.ErrNonFinite: center has NaN/Inf.
//   - ErrInvalidShape: radius not a positive finite number.
func Sphere[S, B comparable](uc *lattice.Unitcell[S, B], center []float64, radius float64, opts ...Option) (*lattice.Lattice[S, B], error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: %w", methodSphere, lattice.ErrNilUnitcell)
	}
	if err := checkCenter(uc.Dim(), center); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSphere, err)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%s: radius %v: %w", methodSphere, radius, ErrInvalidShape)
	}

	return Shape(uc, SphereMembership(center, radius), opts...)
}

// Box is Shape with BoxMembership(center, dims).
//
// Errors:
//   - lattice.ErrDimensionMismatch: len(center) or len(dims) != D.
//   - lattice.ErrNonFinite: center has NaN/Inf.
//   - ErrInvalidShape: some dims_k not a positive finite number.
func Box[S, B comparable](uc *lattice.Unitcell[S, B], center, dims []float64, opts ...Option) (*lattice.Lattice[S, B], error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: %w", methodBox, lattice.ErrNilUnitcell)
	}
	if err := checkCenter(uc.Dim(), center); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBox, err)
	}
	if len(dims) != uc.Dim() {
		return nil, fmt.Errorf("%s: dims length %d, want %d: %w", methodBox, len(dims), uc.Dim(), lattice.ErrDimensionMismatch)
	}
	for k, d := range dims {
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%s: dims[%d]=%v: %w", methodBox, k, d, ErrInvalidShape)
		}
	}

	return Shape(uc, BoxMembership(center, dims), opts...)
}

func checkCenter(dim int, center []float64) error {
	if len(center) != dim {
		return fmt.Errorf("center length %d, want %d: %w", len(center), dim, lattice.ErrDimensionMismatch)
	}
	if !linalg.AllFinite(center) {
		return fmt.Errorf("center: %w", lattice.ErrNonFinite)
	}

	return nil
}
