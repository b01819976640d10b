// SPDX-License-Identifier: MIT

package results

import "errors"

var (
	// ErrIncompatible indicates records with the same key that cannot be
	// summed, e.g. different code sizes or logical operator counts.
	ErrIncompatible = errors.New("results: incompatible records")

	// ErrMalformed indicates a record line that is not valid JSON or has
	// negative counts.
	ErrMalformed = errors.New("results: malformed record")

	// ErrUnknownCompression indicates an unsupported Compression value.
	ErrUnknownCompression = errors.New("results: unknown compression")
)
