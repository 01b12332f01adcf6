// Package lattice defines the Site, Bond, Unitcell and Lattice types and the
// operations that keep their index invariants intact while they are edited.
//
// What:
//
//   - Site[S] is a real-space point with an opaque comparable label.
//   - Bond[B] is a directed connection From→To with a label and an integer
//     Wrap vector counting the unit-cell repeats crossed along each lattice
//     vector.
//   - Geometry[S,B] owns the three core lists (lattice vectors, sites,
//     bonds) together with the spatial dimension D and the Bravais
//     dimension N = len(lattice vectors).
//   - Unitcell[S,B] is a periodic generator (N ≥ 1); Lattice[S,B] is a finite
//     realization that keeps N retained periodic directions (N = 0 means
//     fully open) and a read-only reference to the unitcell it came from.
//
// Invariants (checked by every constructor and setter):
//
//   - all positions and lattice vectors have length D;
//   - lattice vectors are linearly independent;
//   - every bond endpoint is a valid site index;
//   - every bond wrap has length N.
//
// Editing:
//
//   - AddSite / AddBond append; AddBond also appends the returning bond
//     (swapped endpoints, negated wrap) unless WithoutReturnBond is given.
//   - RemoveSites drops the sites, drops every bond touching them and
//     renumbers survivors contiguously in their original order. Indices are
//     validated first; on error nothing changes.
//   - RemoveDisconnectedSites keeps only what is reachable from an origin.
//
// Concurrency:
//
//   - Values are plain mutable aggregates without internal locking. Callers
//     serialize access per instance; concurrent readers of a value nobody
//     edits are safe.
//
// Errors:
//
//   - ErrInvalidIndex, ErrDimensionMismatch, ErrInvalidOrigin,
//     ErrInvalidExtent, ErrDegenerateBasis, ErrNonFinite, ErrNilUnitcell.
package lattice
