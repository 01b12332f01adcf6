// Package expand_test contains shared assertions for expansion tests.
package expand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticekit/lattice"
	"github.com/katalvlaran/latticekit/linalg"
)

const eps = 1e-9

// requireUnitBonds asserts that every bond of l has real-space length 1,
// which holds for every built-in cell under every expansion policy.
func requireUnitBonds(t *testing.T, l *lattice.Lattice[int, int]) {
	t.Helper()
	for i, b := range l.Bonds() {
		v, err := l.BondVector(b)
		require.NoError(t, err, "bond %d", i)
		require.InDelta(t, 1.0, linalg.Norm(v), eps, "bond %d: %v", i, b)
	}
}

// requireOpen asserts that l kept no lattice vector and every wrap is empty.
func requireOpen(t *testing.T, l *lattice.Lattice[int, int]) {
	t.Helper()
	require.True(t, l.IsOpen())
	require.Zero(t, l.BravaisDim())
	for _, b := range l.Bonds() {
		require.Empty(t, b.Wrap)
	}
}

// positions returns the site positions of l in index order.
func positions(l *lattice.Lattice[int, int]) [][]float64 {
	sites := l.Sites()
	out := make([][]float64, len(sites))
	for i, s := range sites {
		out[i] = s.Position
	}

	return out
}
