// SPDX-License-Identifier: MIT

package decoder

import "errors"

var (
	// ErrUnsupportedCode indicates a code family the decoder cannot handle.
	ErrUnsupportedCode = errors.New("decoder: unsupported code")
	// ErrDimensionMismatch indicates a syndrome, signs or correction vector
	// whose length does not match the code.
	ErrDimensionMismatch = errors.New("decoder: dimension mismatch")
)
