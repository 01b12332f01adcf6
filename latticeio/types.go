// SPDX-License-Identifier: MIT
// File: types.go
// Role: YAML document types and their conversion to and from lattice values.

package latticeio

import (
	"fmt"

	"github.com/katalvlaran/latticekit/lattice"
)

// SiteDoc is the document form of lattice.Site.
type SiteDoc[S comparable] struct {
	Position []float64 `yaml:"position,flow" validate:"min=1"`
	Label    S         `yaml:"label"`
}

// BondDoc is the document form of lattice.Bond.
type BondDoc[B comparable] struct {
	From  int   `yaml:"from" validate:"min=0"`
	To    int   `yaml:"to" validate:"min=0"`
	Label B     `yaml:"label"`
	Wrap  []int `yaml:"wrap,flow"`
}

// UnitcellDoc is the document form of lattice.Unitcell.
type UnitcellDoc[S, B comparable] struct {
	Name    string       `yaml:"name,omitempty" validate:"omitempty,max=64"`
	Vectors [][]float64  `yaml:"vectors,flow" validate:"min=1,dive,min=1"`
	Sites   []SiteDoc[S] `yaml:"sites" validate:"dive"`
	Bonds   []BondDoc[B] `yaml:"bonds" validate:"dive"`
}

// LatticeDoc is the document form of lattice.Lattice. Unitcell, when
// present, becomes the provenance of the decoded lattice.
type LatticeDoc[S, B comparable] struct {
	Dim      int                `yaml:"dim" validate:"min=1"`
	Vectors  [][]float64        `yaml:"vectors,flow" validate:"dive,min=1"`
	Sites    []SiteDoc[S]       `yaml:"sites" validate:"dive"`
	Bonds    []BondDoc[B]       `yaml:"bonds" validate:"dive"`
	Unitcell *UnitcellDoc[S, B] `yaml:"unitcell,omitempty"`
}

// NewUnitcellDoc captures uc under name.
func NewUnitcellDoc[S, B comparable](name string, uc *lattice.Unitcell[S, B]) UnitcellDoc[S, B] {
	return UnitcellDoc[S, B]{
		Name:    name,
		Vectors: uc.LatticeVectors(),
		Sites:   siteDocs(uc.Sites()),
		Bonds:   bondDocs(uc.Bonds()),
	}
}

// Unitcell builds the unitcell described by d.
func (d UnitcellDoc[S, B]) Unitcell() (*lattice.Unitcell[S, B], error) {
	return lattice.NewUnitcell(d.Vectors, fromSiteDocs(d.Sites), fromBondDocs(d.Bonds))
}

// NewLatticeDoc captures l and, when it has one, its provenance unitcell.
func NewLatticeDoc[S, B comparable](l *lattice.Lattice[S, B]) LatticeDoc[S, B] {
	doc := LatticeDoc[S, B]{
		Dim:     l.Dim(),
		Vectors: l.LatticeVectors(),
		Sites:   siteDocs(l.Sites()),
		Bonds:   bondDocs(l.Bonds()),
	}
	if uc := l.Unitcell(); uc != nil {
		ucDoc := NewUnitcellDoc("", uc)
		doc.Unitcell = &ucDoc
	}

	return doc
}

// Lattice builds the lattice described by d.
func (d LatticeDoc[S, B]) Lattice() (*lattice.Lattice[S, B], error) {
	if d.Unitcell == nil {
		return lattice.NewLattice(d.Dim, d.Vectors, fromSiteDocs(d.Sites), fromBondDocs(d.Bonds))
	}
	uc, err := d.Unitcell.Unitcell()
	if err != nil {
		return nil, err
	}
	if uc.Dim() != d.Dim {
		return nil, fmt.Errorf("unitcell dimension %d, lattice dimension %d: %w", uc.Dim(), d.Dim, lattice.ErrDimensionMismatch)
	}

	return lattice.Build(uc, cloneVectors(d.Vectors), fromSiteDocs(d.Sites), fromBondDocs(d.Bonds))
}

func siteDocs[S comparable](sites []lattice.Site[S]) []SiteDoc[S] {
	out := make([]SiteDoc[S], len(sites))
	for i, s := range sites {
		out[i] = SiteDoc[S]{Position: s.Position, Label: s.Label}
	}

	return out
}

func bondDocs[B comparable](bonds []lattice.Bond[B]) []BondDoc[B] {
	out := make([]BondDoc[B], len(bonds))
	for i, b := range bonds {
		out[i] = BondDoc[B]{From: b.From, To: b.To, Label: b.Label, Wrap: b.Wrap}
	}

	return out
}

func fromSiteDocs[S comparable](docs []SiteDoc[S]) []lattice.Site[S] {
	out := make([]lattice.Site[S], len(docs))
	for i, d := range docs {
		out[i] = lattice.NewSite(d.Position, d.Label)
	}

	return out
}

func fromBondDocs[B comparable](docs []BondDoc[B]) []lattice.Bond[B] {
	out := make([]lattice.Bond[B], len(docs))
	for i, d := range docs {
		out[i] = lattice.NewBond(d.From, d.To, d.Label, d.Wrap)
	}

	return out
}

func cloneVectors(vs [][]float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = append([]float64(nil), v...)
	}

	return out
}
