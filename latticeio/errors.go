// SPDX-License-Identifier: MIT
// Package: latticekit/latticeio
//
// errors.go — sentinel errors for document decoding.

package latticeio

import "errors"

var (
	// ErrInvalidDocument indicates malformed YAML, unknown fields, or a
	// struct-level validation failure.
	ErrInvalidDocument = errors.New("latticeio: invalid document")

	// ErrUnnamedCell indicates a unitcell in a stream without a name.
	ErrUnnamedCell = errors.New("latticeio: unitcell document has no name")
)
