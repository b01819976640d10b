// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrInvalidSize indicates a lattice dimension below the supported minimum.
	ErrInvalidSize = errors.New("lattice: invalid lattice size")
	// ErrInvalidCoordinate indicates a coordinate missing from a qubit, vertex or face index.
	ErrInvalidCoordinate = errors.New("lattice: invalid coordinate")
	// ErrInvalidAxis indicates an axis outside the code dimension.
	ErrInvalidAxis = errors.New("lattice: invalid axis")
	// ErrOperatorMismatch indicates an operator vector whose length does not match the code.
	ErrOperatorMismatch = errors.New("lattice: operator length does not match code")
)
