package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticekit/lattice"
)

func TestBondsByOrigin(t *testing.T) {
	l, err := lattice.NewLattice(1, nil,
		[]lattice.Site[string]{
			lattice.NewSite([]float64{0}, LabelA),
			lattice.NewSite([]float64{1}, LabelB),
		},
		[]lattice.Bond[int]{
			lattice.NewBond(0, 1, 1, nil),
			lattice.NewBond(1, 0, 2, nil),
			lattice.NewBond(0, 1, 3, nil),
		})
	require.NoError(t, err)

	byOrigin := l.BondsByOrigin()
	require.Len(t, byOrigin, 2)
	require.Len(t, byOrigin[0], 2)
	require.Equal(t, 1, byOrigin[0][0].Label)
	require.Equal(t, 3, byOrigin[0][1].Label)
	require.Len(t, byOrigin[1], 1)
	require.Equal(t, 2, byOrigin[1][0].Label)

	byDest := l.BondsByDestination()
	require.Len(t, byDest, 2)
	require.Len(t, byDest[0], 1)
	require.Equal(t, 2, byDest[0][0].Label)
	require.Len(t, byDest[1], 2)
	require.Equal(t, 1, byDest[1][0].Label)
	require.Equal(t, 3, byDest[1][1].Label)
}

func TestBondsByOrigin_EmptyListsForIsolatedSites(t *testing.T) {
	l := openChain(t, 2)
	_, err := l.AddSite([]float64{5, 5}, 2)
	require.NoError(t, err)
	byOrigin := l.BondsByOrigin()
	require.Len(t, byOrigin, 3)
	require.Empty(t, byOrigin[2])
}

func TestBondVector_RoundTrip(t *testing.T) {
	uc, err := lattice.NewUnitcell[string, int](
		[][]float64{{1, 0}, {0, 1}},
		[]lattice.Site[string]{
			lattice.NewSite([]float64{0, 0}, LabelA),
			lattice.NewSite([]float64{0.5, 0.5}, LabelB),
		},
		nil)
	require.NoError(t, err)

	v, err := uc.BondVector(lattice.NewBond(0, 1, BondNN, []int{1, 1}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1.5, 1.5}, v, 1e-12)

	v, err = uc.BondVector(lattice.NewBond(1, 0, BondNN, []int{-1, 0}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-1.5, -0.5}, v, 1e-12)
}

func TestBondVector_HoneycombNearestNeighbors(t *testing.T) {
	uc := honeycombCell(t)
	for i, b := range uc.Bonds() {
		v, err := uc.BondVector(b)
		require.NoError(t, err)
		require.InDeltaf(t, 1.0, math.Hypot(v[0], v[1]), 1e-12, "bond %d", i)
	}
}

func TestBondVector_Errors(t *testing.T) {
	uc := honeycombCell(t)
	_, err := uc.BondVector(lattice.NewBond(0, 1, BondNN, []int{1}))
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	_, err = uc.BondVector(lattice.NewBond(0, 2, BondNN, []int{0, 0}))
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
}
