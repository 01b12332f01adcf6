// File: methods_edit.go
// Role: in-place editing: AddSite, AddBond, RemoveSite(s), RemoveBond(s).
// Atomicity:
//   - Every mutator validates all of its inputs before touching state.
//   - Removals build the surviving lists off to the side and swap them in,
//     so no caller ever observes a bond pointing at a removed or shifted site.
// AI-HINT (file):
//   - RemoveSites renumbers survivors contiguously in original order; any
//     index you held before the call is stale afterwards.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/latticekit/linalg"
)

const (
	methodAddSite     = "AddSite"
	methodAddBond     = "AddBond"
	methodRemoveSites = "RemoveSites"
	methodRemoveBonds = "RemoveBonds"
)

// AddSite appends a site and returns its index (the previous site count).
// No bonds are created.
//
// Errors:
//   - ErrDimensionMismatch: len(pos) != D.
//   - ErrNonFinite: pos contains NaN/Inf.
//
// Complexity: O(D) amortized.
func (g *Geometry[S, B]) AddSite(pos []float64, label S) (int, error) {
	if len(pos) != g.dim {
		return -1, fmt.Errorf("%s: position length %d, want %d: %w", methodAddSite, len(pos), g.dim, ErrDimensionMismatch)
	}
	if !linalg.AllFinite(pos) {
		return -1, fmt.Errorf("%s: %w", methodAddSite, ErrNonFinite)
	}
	idx := len(g.sites)
	g.sites = append(g.sites, NewSite(pos, label))

	return idx, nil
}

// AddBond appends the bond from→to with the given label.
//
// Implementation:
//   - Stage 1: Resolve options (default wrap = zero vector of length N,
//     returning bond enabled).
//   - Stage 2: Validate endpoints and wrap length.
//   - Stage 3: Append the forward bond and, if enabled, the returning bond
//     (to→from, negated wrap).
//
// Behavior highlights:
//   - Pass the zero value of B for the default label.
//   - Self-bonds are legal; with a non-zero wrap they connect a site to one
//     of its own periodic images.
//
// Errors:
//   - ErrInvalidIndex: from or to outside [0, SiteCount()).
//   - ErrDimensionMismatch: wrap length != N.
//
// Complexity: O(N) amortized.
func (g *Geometry[S, B]) AddBond(from, to int, label B, opts ...BondOption) error {
	cfg := bondConfig{addReturn: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.wrapSet {
		cfg.wrap = make([]int, len(g.vectors))
	}

	n := len(g.sites)
	if from < 0 || from >= n {
		return fmt.Errorf("%s: from=%d outside [0,%d): %w", methodAddBond, from, n, ErrInvalidIndex)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%s: to=%d outside [0,%d): %w", methodAddBond, to, n, ErrInvalidIndex)
	}
	if len(cfg.wrap) != len(g.vectors) {
		return fmt.Errorf("%s: wrap length %d, want %d: %w", methodAddBond, len(cfg.wrap), len(g.vectors), ErrDimensionMismatch)
	}

	forward := Bond[B]{From: from, To: to, Label: label, Wrap: cfg.wrap}
	g.bonds = append(g.bonds, forward)
	if cfg.addReturn {
		g.bonds = append(g.bonds, forward.Reversed())
	}

	return nil
}

// RemoveSite removes site i; see RemoveSites.
func (g *Geometry[S, B]) RemoveSite(i int) error {
	return g.RemoveSites([]int{i})
}

// RemoveSites removes every listed site, drops every bond that touches one
// of them and renumbers the survivors to 0..count-1 in their original
// relative order, rewriting the endpoints of all surviving bonds.
//
// Implementation:
//   - Stage 1: Validate every index (set semantics: duplicates collapse).
//   - Stage 2: Build the old→new index map and the surviving site list.
//   - Stage 3: Filter and rewrite bonds against the map, then swap both lists in.
//
// Errors:
//   - ErrInvalidIndex: any index outside [0, SiteCount()); nothing is removed.
//
// Complexity:
//   - Time O(|sites| + |bonds| + len(indices)), Space O(|sites| + |bonds|).
func (g *Geometry[S, B]) RemoveSites(indices []int) error {
	n := len(g.sites)
	drop := make([]bool, n)
	for _, i := range indices {
		if i < 0 || i >= n {
			return fmt.Errorf("%s: %d outside [0,%d): %w", methodRemoveSites, i, n, ErrInvalidIndex)
		}
		drop[i] = true
	}
	g.removeMarked(drop)

	return nil
}

// removeMarked is the shared removal kernel; drop must have len(g.sites).
// It returns the number of removed sites.
func (g *Geometry[S, B]) removeMarked(drop []bool) int {
	renumber := make([]int, len(g.sites))
	sites := make([]Site[S], 0, len(g.sites))
	for i, s := range g.sites {
		if drop[i] {
			renumber[i] = -1
			continue
		}
		renumber[i] = len(sites)
		sites = append(sites, s)
	}
	removed := len(g.sites) - len(sites)
	if removed == 0 {
		return 0
	}

	bonds := make([]Bond[B], 0, len(g.bonds))
	for _, b := range g.bonds {
		from, to := renumber[b.From], renumber[b.To]
		if from < 0 || to < 0 {
			continue
		}
		b.From, b.To = from, to
		bonds = append(bonds, b)
	}

	g.sites, g.bonds = sites, bonds

	return removed
}

// RemoveBond removes bond i; see RemoveBonds.
func (g *Geometry[S, B]) RemoveBond(i int) error {
	return g.RemoveBonds([]int{i})
}

// RemoveBonds removes every listed bond, keeping the others in order.
// Sites are never touched.
//
// Errors:
//   - ErrInvalidIndex: any index outside [0, BondCount()); nothing is removed.
//
// Complexity: O(|bonds| + len(indices)).
func (g *Geometry[S, B]) RemoveBonds(indices []int) error {
	n := len(g.bonds)
	drop := make([]bool, n)
	for _, i := range indices {
		if i < 0 || i >= n {
			return fmt.Errorf("%s: %d outside [0,%d): %w", methodRemoveBonds, i, n, ErrInvalidIndex)
		}
		drop[i] = true
	}
	bonds := make([]Bond[B], 0, n)
	for i, b := range g.bonds {
		if !drop[i] {
			bonds = append(bonds, b)
		}
	}
	g.bonds = bonds

	return nil
}
