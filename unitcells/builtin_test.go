package unitcells_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticekit/linalg"
	"github.com/katalvlaran/latticekit/unitcells"
)

func TestBuiltins_Shape(t *testing.T) {
	cases := []struct {
		name         string
		build        func() *unitcells.Cell
		d, n, ns, nb int
		volume       float64
	}{
		{"chain", unitcells.Chain, 1, 1, 1, 2, 1},
		{"square", unitcells.Square, 2, 2, 1, 4, 1},
		{"triangular", unitcells.Triangular, 2, 2, 1, 6, 0.8660254037844386},
		{"honeycomb", unitcells.Honeycomb, 2, 2, 2, 6, 2.598076211353316},
		{"kagome", unitcells.Kagome, 2, 2, 3, 12, 3.4641016151377544},
		{"cubic", unitcells.Cubic, 3, 3, 1, 6, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := tc.build()
			require.NoError(t, uc.Validate())
			require.Equal(t, tc.d, uc.Dim())
			require.Equal(t, tc.n, uc.BravaisDim())
			require.Equal(t, tc.ns, uc.SiteCount())
			require.Equal(t, tc.nb, uc.BondCount())

			vol, err := uc.CellVolume()
			require.NoError(t, err)
			require.InDelta(t, tc.volume, vol, 1e-9)

			for i, s := range uc.Sites() {
				require.Equal(t, i, s.Label)
			}
			for _, b := range uc.Bonds() {
				require.Equal(t, 1, b.Label)
				v, err := uc.BondVector(b)
				require.NoError(t, err)
				require.InDelta(t, 1.0, linalg.Norm(v), 1e-9, "bond %v", b)
			}
		})
	}
}

func TestBuiltins_BondsComeInReturningPairs(t *testing.T) {
	for _, build := range []func() *unitcells.Cell{
		unitcells.Chain, unitcells.Square, unitcells.Triangular,
		unitcells.Honeycomb, unitcells.Kagome, unitcells.Cubic,
	} {
		bonds := build().Bonds()
		require.Zero(t, len(bonds)%2)
		for i := 0; i < len(bonds); i += 2 {
			require.Equal(t, bonds[i].Reversed(), bonds[i+1])
		}
	}
}

func TestBuiltins_AreFresh(t *testing.T) {
	a := unitcells.Honeycomb()
	require.NoError(t, a.RemoveSite(0))
	require.Equal(t, 2, unitcells.Honeycomb().SiteCount())
}
