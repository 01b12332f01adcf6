// SPDX-License-Identifier: MIT
// Package: latticekit/expand
//
// errors.go — sentinel errors specific to the expansion engine. Structural
// failures (dimension, origin, extent) reuse the lattice sentinels so that
// callers branch on one taxonomy.

package expand

import "errors"

var (
	// ErrOptionViolation indicates an invalid Option value (e.g. WithMaxSites(0)).
	ErrOptionViolation = errors.New("expand: invalid option supplied")

	// ErrInvalidDistance indicates a negative maximum bond distance.
	ErrInvalidDistance = errors.New("expand: bond distance must be non-negative")

	// ErrInvalidShape indicates a non-positive or non-finite radius or box dimension.
	ErrInvalidShape = errors.New("expand: invalid shape parameters")

	// ErrSiteLimit indicates the expansion would exceed the configured MaxSites.
	ErrSiteLimit = errors.New("expand: site limit exceeded")
)
