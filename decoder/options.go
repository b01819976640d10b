// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"

	"github.com/katalvlaran/lvqec/lattice"
)

// DefaultMaxSweepFactor bounds a decode at 4·max(Lx,Ly,Lz) sweeps.
const DefaultMaxSweepFactor = 4

// Option configures a Sweep3D. Option constructors panic on meaningless
// values; decoding itself never panics.
type Option func(*options)

type options struct {
	maxSweepFactor int
	direction      lattice.Axis
	detectCycles   bool
}

func defaultOptions() options {
	return options{
		maxSweepFactor: DefaultMaxSweepFactor,
		direction:      lattice.AxisX,
		detectCycles:   true,
	}
}

// WithMaxSweepFactor sets the sweep ceiling to factor·max(Lx,Ly,Lz).
// Panics if factor < 1.
func WithMaxSweepFactor(factor int) Option {
	if factor < 1 {
		panic(fmt.Sprintf("decoder: WithMaxSweepFactor(%d)", factor))
	}
	return func(o *options) { o.maxSweepFactor = factor }
}

// WithDefaultDirection sets which edge is flipped when all three faces of
// a vertex octant are unsatisfied. Panics on an axis outside {x, y, z}.
func WithDefaultDirection(a lattice.Axis) Option {
	if a < lattice.AxisX || a > lattice.AxisZ {
		panic(fmt.Sprintf("decoder: WithDefaultDirection(%d)", int(a)))
	}
	return func(o *options) { o.direction = a }
}

// WithCycleDetection toggles revisit tracking. With detection off, only the
// sweep ceiling stops a non-converging decode.
func WithCycleDetection(on bool) Option {
	return func(o *options) { o.detectCycles = on }
}
