package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticekit/lattice"
)

func TestSiteAndBond_Copies(t *testing.T) {
	pos := []float64{1, 2}
	s := lattice.NewSite(pos, LabelA)
	pos[0] = 99
	require.Equal(t, []float64{1, 2}, s.Position)

	wrap := []int{1, -1}
	b := lattice.NewBond(0, 1, BondNN, wrap)
	wrap[0] = 7
	require.Equal(t, []int{1, -1}, b.Wrap)

	c := b.Clone()
	c.Wrap[1] = 5
	require.Equal(t, []int{1, -1}, b.Wrap)
}

func TestBond_PeriodicAndReversed(t *testing.T) {
	require.False(t, lattice.NewBond(0, 1, BondNN, []int{0, 0}).IsPeriodic())
	require.False(t, lattice.NewBond(0, 1, BondNN, nil).IsPeriodic())
	require.True(t, lattice.NewBond(0, 0, BondNN, []int{0, -1}).IsPeriodic())

	r := lattice.NewBond(2, 5, BondNN, []int{1, -3}).Reversed()
	require.Equal(t, lattice.NewBond(5, 2, BondNN, []int{-1, 3}), r)
}

func TestNewUnitcell_Honeycomb(t *testing.T) {
	uc := honeycombCell(t)
	require.Equal(t, 2, uc.Dim())
	require.Equal(t, 2, uc.BravaisDim())
	require.Equal(t, 2, uc.SiteCount())
	require.Equal(t, 6, uc.BondCount())
	require.Equal(t, lattice.KindPlanar, uc.Kind())
}

func TestNewUnitcell_Errors(t *testing.T) {
	site := []lattice.Site[string]{lattice.NewSite([]float64{0, 0}, LabelA)}
	square := [][]float64{{1, 0}, {0, 1}}

	cases := []struct {
		name    string
		vectors [][]float64
		sites   []lattice.Site[string]
		bonds   []lattice.Bond[int]
		want    error
	}{
		{"noVectors", nil, site, nil, lattice.ErrDimensionMismatch},
		{"raggedVectors", [][]float64{{1, 0}, {0}}, site, nil, lattice.ErrDimensionMismatch},
		{"parallelVectors", [][]float64{{1, 0}, {2, 0}}, site, nil, lattice.ErrDegenerateBasis},
		{"tooManyVectors", [][]float64{{1}, {2}}, nil, nil, lattice.ErrDegenerateBasis},
		{"nanVector", [][]float64{{math.NaN(), 0}, {0, 1}}, site, nil, lattice.ErrNonFinite},
		{"siteDimension", square, []lattice.Site[string]{lattice.NewSite([]float64{0}, LabelA)}, nil, lattice.ErrDimensionMismatch},
		{"infSite", square, []lattice.Site[string]{lattice.NewSite([]float64{math.Inf(1), 0}, LabelA)}, nil, lattice.ErrNonFinite},
		{"bondTo", square, site, []lattice.Bond[int]{lattice.NewBond(0, 1, BondNN, []int{0, 0})}, lattice.ErrInvalidIndex},
		{"bondFrom", square, site, []lattice.Bond[int]{lattice.NewBond(-1, 0, BondNN, []int{0, 0})}, lattice.ErrInvalidIndex},
		{"wrapLength", square, site, []lattice.Bond[int]{lattice.NewBond(0, 0, BondNN, []int{1})}, lattice.ErrDimensionMismatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := lattice.NewUnitcell(c.vectors, c.sites, c.bonds)
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestNewLattice_OpenAndErrors(t *testing.T) {
	l, err := lattice.NewLattice[string, int](3, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, l.IsOpen())
	require.Nil(t, l.Unitcell())
	require.Equal(t, lattice.KindOpen, l.Kind())

	_, err = lattice.NewLattice[string, int](0, nil, nil, nil)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}

func TestBuild_RecordsProvenanceSnapshot(t *testing.T) {
	uc := honeycombCell(t)
	l, err := lattice.Build(uc, nil, []lattice.Site[string]{lattice.NewSite([]float64{0, 0}, LabelA)}, nil)
	require.NoError(t, err)
	require.NotNil(t, l.Unitcell())
	require.NotSame(t, uc, l.Unitcell())
	require.Equal(t, uc.Bonds(), l.Unitcell().Bonds())

	// editing the source afterwards leaves the snapshot alone
	require.NoError(t, uc.RemoveSite(1))
	require.Equal(t, 2, l.Unitcell().SiteCount())

	_, err = lattice.Build[string, int](nil, nil, nil, nil)
	require.ErrorIs(t, err, lattice.ErrNilUnitcell)

	_, err = lattice.Build(uc, nil, nil, []lattice.Bond[int]{lattice.NewBond(0, 0, BondNN, nil)})
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	uc := honeycombCell(t)

	sites := uc.Sites()
	sites[0].Position[0] = 42
	s0, err := uc.Site(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, s0.Position)

	bonds := uc.Bonds()
	bonds[1].Wrap[0] = 42
	b1, err := uc.Bond(1)
	require.NoError(t, err)
	require.Equal(t, []int{-1, 0}, b1.Wrap)

	vs := uc.LatticeVectors()
	vs[0][0] = 42
	a1, err := uc.A1()
	require.NoError(t, err)
	require.Equal(t, 1.5, a1[0])

	_, err = uc.Site(2)
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
	_, err = uc.Bond(-1)
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
}

func TestLatticeVectorAccessors(t *testing.T) {
	uc := honeycombCell(t)
	a2, err := uc.A2()
	require.NoError(t, err)
	require.InDelta(t, -math.Sqrt(3)/2, a2[1], 1e-12)

	_, err = uc.A3()
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
	_, err = uc.LatticeVector(-1)
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
}

func TestSetters_AllOrNothing(t *testing.T) {
	uc := honeycombCell(t)

	// dropping a site would leave bonds dangling
	err := uc.SetSites([]lattice.Site[string]{lattice.NewSite([]float64{0, 0}, LabelA)})
	require.ErrorIs(t, err, lattice.ErrInvalidIndex)
	require.Equal(t, 2, uc.SiteCount())

	err = uc.SetSites([]lattice.Site[string]{
		lattice.NewSite([]float64{0, 0}, LabelB),
		lattice.NewSite([]float64{0.5, 0}, LabelA),
	})
	require.NoError(t, err)
	require.Equal(t, []string{LabelB, LabelA}, siteLabels(&uc.Geometry))

	err = uc.SetBonds([]lattice.Bond[int]{lattice.NewBond(0, 1, BondNN, []int{0})})
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	require.Equal(t, 6, uc.BondCount())

	// existing wraps have length 2, so N cannot change yet
	err = uc.SetLatticeVectors([][]float64{{1, 0}})
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	err = uc.SetLatticeVectors([][]float64{{1, 1}, {2, 2}})
	require.ErrorIs(t, err, lattice.ErrDegenerateBasis)
	require.NoError(t, uc.SetLatticeVectors([][]float64{{2, 0}, {0, 2}}))
	a1, err := uc.A1()
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0}, a1)

	require.NoError(t, uc.SetBonds(nil))
	require.Equal(t, 0, uc.BondCount())
	require.NoError(t, uc.SetLatticeVectors([][]float64{{1, 0}}))
	require.Equal(t, 1, uc.BravaisDim())
}

func TestUnitcell_KeepsAtLeastOneLatticeVector(t *testing.T) {
	uc := honeycombCell(t)
	require.NoError(t, uc.SetBonds(nil))

	err := uc.SetLatticeVectors(nil)
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	require.Equal(t, 2, uc.BravaisDim())
	require.NoError(t, uc.Validate())

	c := uc.Clone()
	require.ErrorIs(t, c.SetLatticeVectors([][]float64{}), lattice.ErrDimensionMismatch)
	require.Equal(t, 2, c.BravaisDim())

	// a lattice may drop every periodic direction
	l, err := lattice.NewLattice[string, int](2, [][]float64{{1, 0}}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, l.SetLatticeVectors(nil))
	require.True(t, l.IsOpen())
	require.NoError(t, l.Validate())
}

func TestClone_Independent(t *testing.T) {
	uc := honeycombCell(t)
	c := uc.Clone()
	require.NoError(t, c.RemoveSite(0))
	require.Equal(t, 2, uc.SiteCount())
	require.Equal(t, 6, uc.BondCount())
	require.Equal(t, 1, c.SiteCount())
	require.Equal(t, 0, c.BondCount())

	g := uc.Geometry.Clone()
	require.NoError(t, g.RemoveBond(0))
	require.Equal(t, 6, uc.BondCount())

	l := openChain(t, 3)
	lc := l.Clone()
	_, err := lc.AddSite([]float64{9, 9}, 9)
	require.NoError(t, err)
	require.Equal(t, 3, l.SiteCount())
	require.Equal(t, 4, lc.SiteCount())
}
