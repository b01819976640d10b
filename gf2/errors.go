// SPDX-License-Identifier: MIT

package gf2

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "gf2: ". Return the sentinels directly, or
// wrap them with gf2Errorf at the public boundary; callers match with errors.Is.
var (
	// ErrBadLength is returned for a negative vector length or column count,
	// or for an odd length where a symplectic vector is required.
	ErrBadLength = errors.New("gf2: invalid length")

	// ErrOutOfRange indicates that a bit, qubit or row index is outside bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible lengths,
	// e.g. adding vectors of different length or multiplying H·v with
	// len(v) != H.Cols().
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrUnknownPauli indicates a Pauli label outside {I, X, Y, Z}.
	ErrUnknownPauli = errors.New("gf2: unknown Pauli label")

	// ErrNilOperand indicates that a nil *Vector or *Matrix was passed in.
	ErrNilOperand = errors.New("gf2: nil operand")
)

// gf2Errorf wraps err with an operation tag, keeping the sentinel visible
// to errors.Is. Only call with a non-nil err.
func gf2Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
