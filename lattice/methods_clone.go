// File: methods_clone.go
// Role: deep copies for "branch and isolate" workflows.
// Identity:
//   - A clone shares no mutable storage with its source. The provenance
//     unitcell of a Lattice is read-only and is shared by reference.

package lattice

// Clone returns a deep copy of g.
// Complexity: O(N·D + |sites|·D + |bonds|·N).
func (g *Geometry[S, B]) Clone() *Geometry[S, B] {
	c := g.cloneValue()

	return &c
}

func (g *Geometry[S, B]) cloneValue() Geometry[S, B] {
	return Geometry[S, B]{
		dim:        g.dim,
		minVectors: g.minVectors,
		vectors:    cloneVectors(g.vectors),
		sites:      cloneSites(g.sites),
		bonds:      cloneBonds(g.bonds),
	}
}

// Clone returns a deep copy of the unitcell.
func (u *Unitcell[S, B]) Clone() *Unitcell[S, B] {
	return &Unitcell[S, B]{Geometry: u.cloneValue()}
}

// Clone returns a deep copy of the lattice. Sites, bonds and vectors are
// independent of l; the provenance unitcell pointer is shared.
func (l *Lattice[S, B]) Clone() *Lattice[S, B] {
	return &Lattice[S, B]{Geometry: l.cloneValue(), unitcell: l.unitcell}
}
