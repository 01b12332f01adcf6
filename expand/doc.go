// Package expand turns an infinite periodic Unitcell into one finite,
// indexed Lattice.
//
// Policies:
//
//   - Periodic / PeriodicUniform: the Cartesian product of unitcell sites and
//     every translation 0 ≤ t_i < extent_i. Each direction is independently
//     BoundaryPeriodic (out-of-block bonds fold back with a residual wrap)
//     or BoundaryOpen (out-of-block bonds are dropped).
//   - BondDistance: breadth-first traversal of the bond graph from an origin
//     site, admitting every copy within a maximum hop count.
//   - Shape, Sphere, Box: the same traversal, admitting copies whose
//     real-space position satisfies a membership predicate. Only regions
//     connected to the origin through admitted sites are included.
//
// Traversal-based lattices are always fully open: their bonds carry empty
// wraps and no lattice vector is retained.
//
// Options follow the functional style: WithOrigin, WithBoundaries,
// WithUniformBoundary, WithOpenBoundaries, WithMaxSites, WithContext,
// WithLogger and WithOnAdmit. Invalid option values are recorded and
// surface as ErrOptionViolation when the expansion runs.
//
// The input unitcell is only read; expansions over one shared unitcell may
// run concurrently as long as nobody edits it.
//
// Errors:
//
//   - lattice.ErrNilUnitcell, lattice.ErrDimensionMismatch,
//     lattice.ErrInvalidOrigin, lattice.ErrInvalidExtent.
//   - ErrOptionViolation, ErrInvalidDistance, ErrInvalidShape, ErrSiteLimit.
//   - the context error when WithContext is cancelled.
package expand
