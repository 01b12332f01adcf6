// File: cells.go
// Role: arithmetic on cell translations t ∈ ℤ^N.
// Preconditions:
//   - Operands come from a validated Unitcell: positions and lattice vectors
//     have length D, wraps and translations have length N. No length checks
//     are repeated here.

package expand

// translate returns base + Σ_i cell_i·vectors_i as a fresh slice.
func translate(base []float64, cell []int, vectors [][]float64) []float64 {
	out := make([]float64, len(base))
	copy(out, base)
	for i, c := range cell {
		if c == 0 {
			continue
		}
		for k, v := range vectors[i] {
			out[k] += float64(c) * v
		}
	}

	return out
}

// shift returns cell + sign·wrap as a fresh slice (sign is ±1).
func shift(cell, wrap []int, sign int) []int {
	out := make([]int, len(cell))
	for i, c := range cell {
		out[i] = c + sign*wrap[i]
	}

	return out
}
