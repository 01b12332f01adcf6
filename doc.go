// Package latticekit builds, edits and inspects finite lattices: finite
// collections of sites and bonds generated from an infinite periodic
// unitcell.
//
// 🚀 What is latticekit?
//
//	A typed, generic toolkit that brings together:
//		• Geometry primitives: sites, bonds with periodic wraps, lattice vectors
//		• Editing: add/remove sites and bonds with consistent renumbering
//		• Expansion: periodic blocks, bond-distance balls, shape-bounded regions
//		• A library of standard unitcells (chain … kagome, cubic)
//		• YAML documents and a small CLI
//
// ✨ Why choose latticekit?
//
//   - Generic labels – any comparable site and bond label type
//   - Validated state – every constructor and setter checks the full invariant set
//   - Deterministic – identical inputs give identical site and bond order
//
// Subpackages:
//
//	linalg/     — small dense vector and basis kernels
//	lattice/    — Site, Bond, Unitcell, Lattice and their operations
//	expand/     — unitcell → lattice expansion policies
//	unitcells/  — built-in unitcells and a named registry
//	latticeio/  — YAML encode/decode with validation
//	cmd/latticectl — command-line front end
//
// Quick start:
//
//	uc := unitcells.Honeycomb()
//	l, err := expand.Periodic(uc, []int{4, 4})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = l.RemoveSite(0)
//	fmt.Println(l.SiteCount(), l.BondCount())
package latticekit
