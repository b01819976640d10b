// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownName indicates a code, error model, decoder or method name
	// that the registry does not know.
	ErrUnknownName = errors.New("config: unknown name")

	// ErrInvalidInput indicates a syntactically valid file with missing or
	// inconsistent content.
	ErrInvalidInput = errors.New("config: invalid input")

	// ErrInvalidParameter indicates a parameter with the wrong type or an
	// out-of-range value.
	ErrInvalidParameter = errors.New("config: invalid parameter")

	// ErrInvalidRange indicates a range or bias expression that cannot be
	// parsed.
	ErrInvalidRange = errors.New("config: invalid range")
)
