// SPDX-License-Identifier: MIT

package noise

import "errors"

var (
	// ErrInvalidProbability indicates an error rate or deformation
	// probability outside [0,1].
	ErrInvalidProbability = errors.New("noise: probability must be in [0,1]")

	// ErrInvalidDirection indicates a direction with a negative component or
	// components that do not sum to 1.
	ErrInvalidDirection = errors.New("noise: direction must be non-negative and sum to 1")

	// ErrInvalidBias indicates a negative or NaN bias ratio.
	ErrInvalidBias = errors.New("noise: bias ratio must be a non-negative number")

	// ErrNilCode indicates that a nil code was passed to a model.
	ErrNilCode = errors.New("noise: nil code")
)
