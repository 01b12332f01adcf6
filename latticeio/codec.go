// SPDX-License-Identifier: MIT
// File: codec.go
// Role: YAML encode/decode entry points and the shared validation gates.

package latticeio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latticekit/lattice"
)

const (
	methodEncodeUnitcell  = "EncodeUnitcell"
	methodDecodeUnitcell  = "DecodeUnitcell"
	methodDecodeUnitcells = "DecodeUnitcells"
	methodEncodeLattice   = "EncodeLattice"
	methodDecodeLattice   = "DecodeLattice"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Named pairs a decoded unitcell with its document name.
type Named[S, B comparable] struct {
	Name string
	Cell *lattice.Unitcell[S, B]
}

// EncodeUnitcell writes uc as a single YAML document.
func EncodeUnitcell[S, B comparable](w io.Writer, name string, uc *lattice.Unitcell[S, B]) error {
	if uc == nil {
		return fmt.Errorf("%s: %w", methodEncodeUnitcell, lattice.ErrNilUnitcell)
	}

	return encode(w, methodEncodeUnitcell, NewUnitcellDoc(name, uc))
}

// DecodeUnitcell reads one unitcell document and returns the unitcell and
// its name ("" when absent).
//
// Errors:
//   - ErrInvalidDocument: malformed YAML, unknown field, failed struct tags.
//   - lattice sentinels: the decoded values break a unitcell invariant.
func DecodeUnitcell[S, B comparable](r io.Reader) (*lattice.Unitcell[S, B], string, error) {
	var doc UnitcellDoc[S, B]
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, "", fmt.Errorf("%s: %w: %v", methodDecodeUnitcell, ErrInvalidDocument, err)
	}
	uc, err := checkUnitcell(doc)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", methodDecodeUnitcell, err)
	}

	return uc, doc.Name, nil
}

// DecodeUnitcells reads a stream of "---"-separated unitcell documents.
// Every document must carry a name.
//
// Errors:
//   - ErrInvalidDocument, ErrUnnamedCell, lattice sentinels; the failing
//     document is identified by its 0-based position.
func DecodeUnitcells[S, B comparable](r io.Reader) ([]Named[S, B], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var out []Named[S, B]
	for i := 0; ; i++ {
		var doc UnitcellDoc[S, B]
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w: %v", methodDecodeUnitcells, i, ErrInvalidDocument, err)
		}
		if strings.TrimSpace(doc.Name) == "" {
			return nil, fmt.Errorf("%s: document %d: %w", methodDecodeUnitcells, i, ErrUnnamedCell)
		}
		uc, err := checkUnitcell(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: document %d (%s): %w", methodDecodeUnitcells, i, doc.Name, err)
		}
		out = append(out, Named[S, B]{Name: doc.Name, Cell: uc})
	}
}

// EncodeLattice writes l, with its provenance unitcell if any.
func EncodeLattice[S, B comparable](w io.Writer, l *lattice.Lattice[S, B]) error {
	if l == nil {
		return fmt.Errorf("%s: nil lattice: %w", methodEncodeLattice, ErrInvalidDocument)
	}

	return encode(w, methodEncodeLattice, NewLatticeDoc(l))
}

// DecodeLattice reads one lattice document.
//
// Errors: same classes as DecodeUnitcell.
func DecodeLattice[S, B comparable](r io.Reader) (*lattice.Lattice[S, B], error) {
	var doc LatticeDoc[S, B]
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", methodDecodeLattice, ErrInvalidDocument, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecodeLattice, formatValidationError(err))
	}
	l, err := doc.Lattice()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecodeLattice, err)
	}

	return l, nil
}

func checkUnitcell[S, B comparable](doc UnitcellDoc[S, B]) (*lattice.Unitcell[S, B], error) {
	if err := validate.Struct(doc); err != nil {
		return nil, formatValidationError(err)
	}

	return doc.Unitcell()
}

func encode(w io.Writer, method string, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// formatValidationError flattens validator errors into one ErrInvalidDocument.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
