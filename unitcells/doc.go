// Package unitcells provides the standard two- and three-dimensional
// unitcells and a named, concurrency-safe registry of unitcell factories.
//
// Every built-in uses int labels: a site's label is its sublattice index and
// every bond is labelled 1 (nearest-neighbor shell). Bonds are listed in
// both orientations, so each physical neighbor pair contributes two bonds.
//
//	Chain       D=1 N=1  1 site   2 bonds
//	Square      D=2 N=2  1 site   4 bonds
//	Triangular  D=2 N=2  1 site   6 bonds
//	Honeycomb   D=2 N=2  2 sites  6 bonds
//	Kagome      D=2 N=2  3 sites 12 bonds
//	Cubic       D=3 N=3  1 site   6 bonds
//
// Library additionally registers cells decoded from YAML (see latticeio).
package unitcells
