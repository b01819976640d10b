// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqec/gf2"
)

// directionTolerance bounds the rounding slack allowed in r_x + r_y + r_z.
const directionTolerance = 1e-9

// Direction splits an error rate between the three non-trivial Paulis.
type Direction struct {
	X, Y, Z float64
}

// Depolarizing is the unbiased direction (1/3, 1/3, 1/3).
var Depolarizing = Direction{X: 1.0 / 3, Y: 1.0 / 3, Z: 1.0 / 3}

// Validate reports ErrInvalidDirection unless every component is
// non-negative and the components sum to 1.
func (d Direction) Validate() error {
	for _, r := range []float64{d.X, d.Y, d.Z} {
		if r < 0 || math.IsNaN(r) {
			return fmt.Errorf("direction %s: %w", d, ErrInvalidDirection)
		}
	}
	if math.Abs(d.X+d.Y+d.Z-1) > directionTolerance {
		return fmt.Errorf("direction %s: %w", d, ErrInvalidDirection)
	}
	return nil
}

// String formats the direction as it appears in model labels.
func (d Direction) String() string {
	return fmt.Sprintf("X%.4fY%.4fZ%.4f", d.X, d.Y, d.Z)
}

// DirectionFromBias returns the direction with bias ratio eta towards pauli:
// r_pauli = eta/(1+eta) and the other two components 1/(2(1+eta)).
// eta = +Inf yields pure pauli noise; eta = 0.5 with pauli Z is depolarizing.
func DirectionFromBias(pauli gf2.Pauli, eta float64) (Direction, error) {
	if eta < 0 || math.IsNaN(eta) {
		return Direction{}, fmt.Errorf("DirectionFromBias: eta=%v: %w", eta, ErrInvalidBias)
	}
	major, minor := 1.0, 0.0
	if !math.IsInf(eta, 1) {
		major = eta / (1 + eta)
		minor = 1 / (2 * (1 + eta))
	}
	switch pauli {
	case gf2.X:
		return Direction{X: major, Y: minor, Z: minor}, nil
	case gf2.Y:
		return Direction{X: minor, Y: major, Z: minor}, nil
	case gf2.Z:
		return Direction{X: minor, Y: minor, Z: major}, nil
	default:
		return Direction{}, fmt.Errorf("DirectionFromBias: %s: %w", pauli, gf2.ErrUnknownPauli)
	}
}
