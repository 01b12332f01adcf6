package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticekit/lattice"
)

func TestAddSite(t *testing.T) {
	l, err := lattice.NewLattice[string, int](2, nil, nil, nil)
	require.NoError(t, err)

	i, err := l.AddSite([]float64{0, 0}, LabelA)
	require.NoError(t, err)
	require.Equal(t, 0, i)
	i, err = l.AddSite([]float64{1, 0}, LabelB)
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.Equal(t, 0, l.BondCount())

	_, err = l.AddSite([]float64{1}, LabelA)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	_, err = l.AddSite([]float64{math.NaN(), 0}, LabelA)
	require.ErrorIs(t, err, lattice.ErrNonFinite)
	require.Equal(t, 2, l.SiteCount())
}

func TestAddBond_DefaultAddsReturningBond(t *testing.T) {
	uc := honeycombCell(t)
	before := uc.BondCount()

	require.NoError(t, uc.AddBond(0, 1, 2, lattice.WithWrap([]int{1, -2})))
	require.Equal(t, before+2, uc.BondCount())

	fwd, err := uc.Bond(before)
	require.NoError(t, err)
	require.Equal(t, lattice.NewBond(0, 1, 2, []int{1, -2}), fwd)
	back, err := uc.Bond(before + 1)
	require.NoError(t, err)
	require.Equal(t, lattice.NewBond(1, 0, 2, []int{-1, 2}), back)
}

func TestAddBond_DefaultWrapAndLabel(t *testing.T) {
	uc := honeycombCell(t)
	var zero int
	require.NoError(t, uc.AddBond(1, 0, zero))

	bonds := uc.Bonds()
	require.Equal(t, lattice.NewBond(1, 0, 0, []int{0, 0}), bonds[6])
	require.Equal(t, lattice.NewBond(0, 1, 0, []int{0, 0}), bonds[7])
}

func TestAddBond_WithoutReturnBond(t *testing.T) {
	l := openChain(t, 3)
	before := l.BondCount()
	require.NoError(t, l.AddBond(0, 2, 3, lattice.WithoutReturnBond()))
	require.Equal(t, before+1, l.BondCount())

	require.NoError(t, l.AddBond(2, 0, 3, lattice.WithReturnBond(false)))
	require.Equal(t, before+2, l.BondCount())
	require.NoError(t, l.AddBond(2, 0, 3, lattice.WithReturnBond(true)))
	require.Equal(t, before+4, l.BondCount())
}

func TestAddBond_Errors(t *testing.T) {
	uc := honeycombCell(t)
	require.ErrorIs(t, uc.AddBond(0, 2, BondNN), lattice.ErrInvalidIndex)
	require.ErrorIs(t, uc.AddBond(-1, 0, BondNN), lattice.ErrInvalidIndex)
	require.ErrorIs(t, uc.AddBond(0, 1, BondNN, lattice.WithWrap([]int{1})), lattice.ErrDimensionMismatch)
	require.Equal(t, 6, uc.BondCount())

	// an open lattice only accepts empty wraps
	l := openChain(t, 2)
	require.ErrorIs(t, l.AddBond(0, 1, BondNN, lattice.WithWrap([]int{0})), lattice.ErrDimensionMismatch)
}

func TestRemoveSites_RenumbersAndDropsBonds(t *testing.T) {
	l := openChain(t, 5) // 0-1-2-3-4
	require.NoError(t, l.RemoveSites([]int{2}))

	require.Equal(t, []int{0, 1, 3, 4}, siteLabels(&l.Geometry))
	// bonds 1-2 and 2-3 (both directions) are gone; 3-4 becomes 2-3
	require.Equal(t, 4, l.BondCount())
	for _, b := range l.Bonds() {
		require.NotContains(t, [][2]int{{1, 2}, {2, 1}}, [2]int{b.From, b.To})
	}
	requireBondsValid(t, &l.Geometry)
	require.Len(t, l.ConnectedComponents(), 2)
}

func TestRemoveSites_InvalidIndexLeavesLatticeUnchanged(t *testing.T) {
	l := openChain(t, 4)
	before := l.Clone()

	require.ErrorIs(t, l.RemoveSites([]int{1, 4}), lattice.ErrInvalidIndex)
	require.ErrorIs(t, l.RemoveSites([]int{-1}), lattice.ErrInvalidIndex)
	require.ErrorIs(t, l.RemoveSite(9), lattice.ErrInvalidIndex)
	require.Equal(t, before.Sites(), l.Sites())
	require.Equal(t, before.Bonds(), l.Bonds())

	// removing an index that no longer exists after a removal fails too
	require.NoError(t, l.RemoveSite(3))
	require.ErrorIs(t, l.RemoveSite(3), lattice.ErrInvalidIndex)
}

func TestRemoveSites_DuplicatesCollapse(t *testing.T) {
	l := openChain(t, 4)
	require.NoError(t, l.RemoveSites([]int{1, 1, 1}))
	require.Equal(t, []int{0, 2, 3}, siteLabels(&l.Geometry))

	require.NoError(t, l.RemoveSites(nil))
	require.Equal(t, 3, l.SiteCount())
}

func TestRemoveSites_SetEqualsDescendingSequence(t *testing.T) {
	bulk := openChain(t, 10)
	seq := bulk.Clone()

	require.NoError(t, bulk.RemoveSites([]int{3, 4, 8}))
	for _, i := range []int{8, 4, 3} {
		require.NoError(t, seq.RemoveSite(i))
		requireBondsValid(t, &seq.Geometry)
	}

	require.Equal(t, bulk.Sites(), seq.Sites())
	require.Equal(t, bulk.Bonds(), seq.Bonds())
	require.Equal(t, []int{0, 1, 2, 5, 6, 7, 9}, siteLabels(&bulk.Geometry))
}

func TestRemoveBonds(t *testing.T) {
	l := openChain(t, 3) // bonds: 0→1, 1→0, 1→2, 2→1
	require.NoError(t, l.RemoveBonds([]int{0, 3}))
	bonds := l.Bonds()
	require.Len(t, bonds, 2)
	require.Equal(t, [2]int{1, 0}, [2]int{bonds[0].From, bonds[0].To})
	require.Equal(t, [2]int{1, 2}, [2]int{bonds[1].From, bonds[1].To})

	require.ErrorIs(t, l.RemoveBonds([]int{0, 2}), lattice.ErrInvalidIndex)
	require.Equal(t, 2, l.BondCount())
	require.NoError(t, l.RemoveBond(1))
	require.Equal(t, 1, l.BondCount())
	require.Equal(t, 3, l.SiteCount())
}
