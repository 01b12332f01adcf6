// SPDX-License-Identifier: MIT
// File: traverse.go
// Role: breadth-first walk over translated unitcell site copies, shared by
//       BondDistance and the shape policies.
// Determinism:
//   - A node is (cell translation t, unitcell site s). Nodes are numbered in
//     admission order, which is BFS order from the origin node (t = 0).
//   - Neighbors of a node are visited outgoing bonds first (unitcell bond
//     order, destination t + wrap), then incoming bonds (source t − wrap).
// AI-HINT (file):
//   - The admit callback decides membership; a rejected node is cached and
//     never re-evaluated, so predicates run at most once per node.
//   - Bonds are emitted after the walk: every unitcell bond instance whose
//     two endpoints were admitted, with an empty wrap.

package expand

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/latticekit/lattice"
)

// admitFunc reports whether a candidate at pos, depth hops from the origin,
// belongs to the generated lattice.
type admitFunc func(pos []float64, depth int) bool

type node struct {
	cell  []int
	site  int
	depth int
}

type walker[S, B comparable] struct {
	uc       *lattice.Unitcell[S, B]
	vectors  [][]float64
	sites    []lattice.Site[S]
	outgoing [][]lattice.Bond[B]
	incoming [][]lattice.Bond[B]
	opts     Options
	admit    admitFunc

	nodes    []node
	index    map[string]int
	rejected map[string]struct{}
	buf      []byte
}

func newWalker[S, B comparable](uc *lattice.Unitcell[S, B], o Options, admit admitFunc) *walker[S, B] {
	return &walker[S, B]{
		uc:       uc,
		vectors:  uc.LatticeVectors(),
		sites:    uc.Sites(),
		outgoing: uc.BondsByOrigin(),
		incoming: uc.BondsByDestination(),
		opts:     o,
		admit:    admit,
		index:    make(map[string]int),
		rejected: make(map[string]struct{}),
	}
}

// key encodes (cell, site) as "t1,t2,…|s".
func (w *walker[S, B]) key(cell []int, site int) string {
	w.buf = w.buf[:0]
	for i, c := range cell {
		if i > 0 {
			w.buf = append(w.buf, ',')
		}
		w.buf = strconv.AppendInt(w.buf, int64(c), 10)
	}
	w.buf = append(w.buf, '|')
	w.buf = strconv.AppendInt(w.buf, int64(site), 10)

	return string(w.buf)
}

// position returns sites[site].Position + Σ cell_i·a_i.
func (w *walker[S, B]) position(cell []int, site int) []float64 {
	return translate(w.sites[site].Position, cell, w.vectors)
}

// offer evaluates a candidate and enqueues it when admitted.
func (w *walker[S, B]) offer(cell []int, site, depth int) error {
	k := w.key(cell, site)
	if _, ok := w.index[k]; ok {
		return nil
	}
	if _, ok := w.rejected[k]; ok {
		return nil
	}
	pos := w.position(cell, site)
	if !w.admit(pos, depth) {
		w.rejected[k] = struct{}{}
		return nil
	}
	if len(w.nodes) >= w.opts.MaxSites {
		return fmt.Errorf("%w (max %d)", ErrSiteLimit, w.opts.MaxSites)
	}
	w.index[k] = len(w.nodes)
	w.opts.OnAdmit(len(w.nodes), depth)
	w.nodes = append(w.nodes, node{cell: cell, site: site, depth: depth})

	return nil
}

// run walks from the origin site of cell 0 and assembles the result.
//
// Implementation:
//   - Stage 1: Offer the origin node at depth 0.
//   - Stage 2: Dequeue in FIFO order, offering each neighbor at depth+1.
//   - Stage 3: Materialize sites in admission order and emit every bond
//     instance between admitted nodes.
func (w *walker[S, B]) run() (*lattice.Lattice[S, B], error) {
	n := len(w.vectors)
	if err := w.offer(make([]int, n), w.opts.Origin, 0); err != nil {
		return nil, err
	}

	for qi := 0; qi < len(w.nodes); qi++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		u := w.nodes[qi]
		for _, b := range w.outgoing[u.site] {
			next := shift(u.cell, b.Wrap, 1)
			if err := w.offer(next, b.To, u.depth+1); err != nil {
				return nil, err
			}
		}
		for _, b := range w.incoming[u.site] {
			next := shift(u.cell, b.Wrap, -1)
			if err := w.offer(next, b.From, u.depth+1); err != nil {
				return nil, err
			}
		}
	}

	sites := make([]lattice.Site[S], len(w.nodes))
	for i, u := range w.nodes {
		sites[i] = lattice.Site[S]{Position: w.position(u.cell, u.site), Label: w.sites[u.site].Label}
	}
	bonds := make([]lattice.Bond[B], 0, len(w.nodes))
	for i, u := range w.nodes {
		for _, b := range w.outgoing[u.site] {
			next := shift(u.cell, b.Wrap, 1)
			j, ok := w.index[w.key(next, b.To)]
			if !ok {
				continue
			}
			bonds = append(bonds, lattice.Bond[B]{From: i, To: j, Label: b.Label, Wrap: []int{}})
		}
	}

	return lattice.Build(w.uc, nil, sites, bonds)
}

// checkOrigin validates the origin option against uc.
func checkOrigin[S, B comparable](uc *lattice.Unitcell[S, B], origin int) error {
	if origin < 0 || origin >= uc.SiteCount() {
		return fmt.Errorf("origin %d outside [0,%d): %w", origin, uc.SiteCount(), lattice.ErrInvalidOrigin)
	}

	return nil
}
