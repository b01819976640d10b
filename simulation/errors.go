// SPDX-License-Identifier: MIT

package simulation

import "errors"

var (
	// ErrNilComponent indicates a nil code, error model or decoder.
	ErrNilComponent = errors.New("simulation: nil component")

	// ErrInvalidTrials indicates a negative trial count.
	ErrInvalidTrials = errors.New("simulation: trial count must be non-negative")

	// ErrInvalidPartition indicates non-positive nodes, cores or inputs.
	ErrInvalidPartition = errors.New("simulation: nodes, cores and inputs must be positive")

	// ErrTrialFailed indicates that one or more trials returned an error.
	// The run still completes the remaining trials.
	ErrTrialFailed = errors.New("simulation: trial failed")

	// ErrTooFewTasks indicates fewer tasks (nodes·cores) than inputs.
	ErrTooFewTasks = errors.New("simulation: fewer tasks than inputs")
)
