// SPDX-License-Identifier: MIT
// Package linalg: sentinel errors.
//
// Every message is prefixed with "linalg: ..."; callers wrap with context
// via fmt.Errorf("...: %w", ErrX) and match with errors.Is.

package linalg

import "errors"

var (
	// ErrDimensionMismatch indicates operands whose lengths differ.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")
)
