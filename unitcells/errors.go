// SPDX-License-Identifier: MIT
// Package: latticekit/unitcells
//
// errors.go — sentinel errors for the registry.

package unitcells

import "errors"

var (
	// ErrUnknownCell indicates a name with no registered factory.
	ErrUnknownCell = errors.New("unitcells: unknown unitcell")

	// ErrDuplicateCell indicates a name that is already registered.
	ErrDuplicateCell = errors.New("unitcells: unitcell already registered")

	// ErrEmptyName indicates a blank registration name or a nil factory.
	ErrEmptyName = errors.New("unitcells: empty name or nil factory")
)
