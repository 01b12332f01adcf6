// SPDX-License-Identifier: MIT
// File: periodic.go
// Role: periodic-block expansion (extent_1 × … × extent_N translated copies).
// Determinism:
//   - Cells are enumerated in row-major order with the last direction
//     varying fastest; within a cell, sites keep unitcell order. Lattice site
//     index = cellIndex·|unitcell sites| + unitcell site index.
//   - Bonds are emitted cell by cell, in unitcell bond order.
// AI-HINT (file):
//   - Residual wraps only keep the periodic directions, in increasing
//     direction order, matching the retained lattice vectors extent_i·a_i.

package expand

import (
	"fmt"

	"github.com/katalvlaran/latticekit/lattice"
	"github.com/katalvlaran/latticekit/linalg"
)

const (
	methodPeriodic        = "Periodic"
	methodPeriodicUniform = "PeriodicUniform"
)

// Periodic generates the periodic block of uc with the given per-direction
// extent.
//
// Implementation:
//   - Stage 1: Validate uc, extent and boundaries; bound the site count by MaxSites.
//   - Stage 2: Emit every unitcell site translated by Σ t_i·a_i for each cell t.
//   - Stage 3: For each cell t and unitcell bond b, locate the destination
//     cell t + b.Wrap. Periodic directions fold it back with floor division,
//     keeping the quotient as residual wrap; Open directions drop the bond
//     when it leaves [0, extent_i).
//   - Stage 4: Retain extent_i·a_i for every periodic direction and assemble
//     the result through lattice.Build.
//
// Behavior highlights:
//   - The origin copy (WithOrigin, default 0) is lattice site Origin, the
//     copy in cell t = 0.
//   - extent_i = 1 with a periodic boundary turns a wrap along i into a bond
//     between a site and its own periodic image.
//   - All-open boundaries yield a lattice with N = 0 and empty wraps.
//
// Errors:
//   - lattice.ErrNilUnitcell: uc is nil.
//   - lattice.ErrDimensionMismatch: len(extent) or the boundary count differs from N.
//   - lattice.ErrInvalidExtent: some extent_i < 1.
//   - lattice.ErrInvalidOrigin: WithOrigin names no unitcell site (checked
//     only when the unitcell has sites).
//   - ErrOptionViolation, ErrSiteLimit, or the context error.
//
// Complexity:
//   - Time O(Π extent·(|sites|·D + |bonds|·N)), Space O(result).
func Periodic[S, B comparable](uc *lattice.Unitcell[S, B], extent []int, opts ...Option) (*lattice.Lattice[S, B], error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: %w", methodPeriodic, lattice.ErrNilUnitcell)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPeriodic, err)
	}

	n := uc.BravaisDim()
	if len(extent) != n {
		return nil, fmt.Errorf("%s: extent has %d entries, want %d: %w", methodPeriodic, len(extent), n, lattice.ErrDimensionMismatch)
	}
	for i, e := range extent {
		if e < 1 {
			return nil, fmt.Errorf("%s: extent[%d]=%d (must be ≥ 1): %w", methodPeriodic, i, e, lattice.ErrInvalidExtent)
		}
	}
	if uc.SiteCount() > 0 {
		if err = checkOrigin(uc, o.Origin); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPeriodic, err)
		}
	}
	boundaries, err := o.boundariesFor(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPeriodic, err)
	}

	cellSites := uc.Sites()
	cellBonds := uc.Bonds()
	vectors := uc.LatticeVectors()
	ns := len(cellSites)

	// Stage 1: overflow-safe site bound.
	cells := 1
	for _, e := range extent {
		if cells > o.MaxSites/e {
			return nil, fmt.Errorf("%s: extent %v: %w (max %d)", methodPeriodic, extent, ErrSiteLimit, o.MaxSites)
		}
		cells *= e
	}
	if ns > 0 && cells > o.MaxSites/ns {
		return nil, fmt.Errorf("%s: %d cells × %d sites: %w (max %d)", methodPeriodic, cells, ns, ErrSiteLimit, o.MaxSites)
	}

	// Stage 2: sites.
	sites := make([]lattice.Site[S], 0, cells*ns)
	t := make([]int, n)
	for cell := 0; cell < cells; cell++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPeriodic, err)
		}
		for _, s := range cellSites {
			o.OnAdmit(len(sites), 0)
			sites = append(sites, lattice.Site[S]{Position: translate(s.Position, t, vectors), Label: s.Label})
		}
		advance(t, extent)
	}

	// Stage 3: bonds.
	periodic := make([]int, 0, n)
	for i, b := range boundaries {
		if b == BoundaryPeriodic {
			periodic = append(periodic, i)
		}
	}
	bonds := make([]lattice.Bond[B], 0, cells*len(cellBonds))
	dest := make([]int, n)
	clear(t)
	for cell := 0; cell < cells; cell++ {
		for _, b := range cellBonds {
			wrap, ok := fold(t, b.Wrap, extent, boundaries, periodic, dest)
			if !ok {
				continue
			}
			bonds = append(bonds, lattice.Bond[B]{
				From:  cell*ns + b.From,
				To:    linearIndex(dest, extent)*ns + b.To,
				Label: b.Label,
				Wrap:  wrap,
			})
		}
		advance(t, extent)
	}

	// Stage 4: retained vectors and assembly.
	retained := make([][]float64, 0, len(periodic))
	for _, i := range periodic {
		retained = append(retained, linalg.Scale(vectors[i], float64(extent[i])))
	}
	out, err := lattice.Build(uc, retained, sites, bonds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPeriodic, err)
	}
	o.Logger.Debug("expanded periodic block",
		"extent", extent,
		"periodic_directions", len(periodic),
		"sites", out.SiteCount(),
		"bonds", out.BondCount(),
	)

	return out, nil
}

// PeriodicUniform is Periodic with extent n along every Bravais direction.
func PeriodicUniform[S, B comparable](uc *lattice.Unitcell[S, B], n int, opts ...Option) (*lattice.Lattice[S, B], error) {
	if uc == nil {
		return nil, fmt.Errorf("%s: %w", methodPeriodicUniform, lattice.ErrNilUnitcell)
	}
	extent := make([]int, uc.BravaisDim())
	for i := range extent {
		extent[i] = n
	}

	return Periodic(uc, extent, opts...)
}

// fold writes the destination cell of a bond leaving cell t with the given
// wrap into dest and returns the residual wrap over the periodic directions.
// ok is false when an open direction leaves the block.
func fold(t, wrap, extent []int, boundaries []Boundary, periodic []int, dest []int) (residual []int, ok bool) {
	for i := range t {
		d := t[i] + wrap[i]
		if d >= 0 && d < extent[i] {
			dest[i] = d
			continue
		}
		if boundaries[i] == BoundaryOpen {
			return nil, false
		}
		_, dest[i] = linalg.FloorDivMod(d, extent[i])
	}
	residual = make([]int, len(periodic))
	for k, i := range periodic {
		residual[k], _ = linalg.FloorDivMod(t[i]+wrap[i], extent[i])
	}

	return residual, true
}

// advance steps the odometer t through [0, extent) with the last digit fastest.
func advance(t, extent []int) {
	for i := len(t) - 1; i >= 0; i-- {
		t[i]++
		if t[i] < extent[i] {
			return
		}
		t[i] = 0
	}
}

// linearIndex is the row-major index of cell t (last direction fastest).
func linearIndex(t, extent []int) int {
	idx := 0
	for i, ti := range t {
		idx = idx*extent[i] + ti
	}

	return idx
}
