// Package latticeio reads and writes unitcells and lattices as YAML
// documents.
//
// Decoding runs three gates in order:
//
//  1. yaml.v3 with KnownFields: unknown keys are rejected.
//  2. go-playground/validator struct tags: shape checks (at least one lattice
//     vector, non-empty positions, non-negative bond endpoints).
//  3. The lattice constructors: the full invariant set (dimensions, rank,
//     finiteness, bond indices, wrap lengths).
//
// Gate 1 and 2 failures wrap ErrInvalidDocument; gate 3 failures wrap the
// lattice sentinel that fired.
//
// Wire format (unitcell):
//
//	name: honeycomb
//	vectors:
//	  - [1.5, 0.8660254037844386]
//	  - [1.5, -0.8660254037844386]
//	sites:
//	  - {position: [0, 0], label: 0}
//	  - {position: [1, 0], label: 1}
//	bonds:
//	  - {from: 0, to: 1, label: 1, wrap: [0, 0]}
//
// A lattice document adds "dim" and may embed its provenance unitcell under
// "unitcell".
package latticeio
