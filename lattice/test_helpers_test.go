// Package lattice_test contains shared fixtures for lattice tests.
package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticekit/lattice"
)

// Common labels used across lattice tests.
const (
	LabelA = "A"
	LabelB = "B"
	BondNN = 1
)

// honeycombCell returns the two-site, six-bond honeycomb unitcell.
func honeycombCell(t *testing.T) *lattice.Unitcell[string, int] {
	t.Helper()
	h := math.Sqrt(3) / 2
	uc, err := lattice.NewUnitcell(
		[][]float64{{1.5, h}, {1.5, -h}},
		[]lattice.Site[string]{
			lattice.NewSite([]float64{0, 0}, LabelA),
			lattice.NewSite([]float64{1, 0}, LabelB),
		},
		[]lattice.Bond[int]{
			lattice.NewBond(0, 1, BondNN, []int{0, 0}),
			lattice.NewBond(0, 1, BondNN, []int{-1, 0}),
			lattice.NewBond(0, 1, BondNN, []int{0, -1}),
			lattice.NewBond(1, 0, BondNN, []int{0, 0}),
			lattice.NewBond(1, 0, BondNN, []int{1, 0}),
			lattice.NewBond(1, 0, BondNN, []int{0, 1}),
		},
	)
	require.NoError(t, err)

	return uc
}

// openChain returns an open 2D lattice of n sites on the x axis, labeled by
// index, with bidirectional nearest-neighbor bonds.
func openChain(t *testing.T, n int) *lattice.Lattice[int, int] {
	t.Helper()
	l, err := lattice.NewLattice[int, int](2, nil, nil, nil)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		idx, err := l.AddSite([]float64{float64(i), 0}, i)
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, l.AddBond(i, i+1, BondNN))
	}

	return l
}

// requireBondsValid asserts the endpoint invariant on every bond.
func requireBondsValid[S, B comparable](t *testing.T, g *lattice.Geometry[S, B]) {
	t.Helper()
	n := g.SiteCount()
	for i, b := range g.Bonds() {
		require.GreaterOrEqualf(t, b.From, 0, "bond %d from", i)
		require.Lessf(t, b.From, n, "bond %d from", i)
		require.GreaterOrEqualf(t, b.To, 0, "bond %d to", i)
		require.Lessf(t, b.To, n, "bond %d to", i)
	}
	require.NoError(t, g.Validate())
}

// siteLabels returns the site labels in index order.
func siteLabels[S, B comparable](g *lattice.Geometry[S, B]) []S {
	sites := g.Sites()
	out := make([]S, len(sites))
	for i, s := range sites {
		out[i] = s.Label
	}

	return out
}
