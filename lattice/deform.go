// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvqec/gf2"
)

// AxisQubits returns, in index order, the qubits whose edge points along a.
func AxisQubits(code Code, a Axis) ([]int, error) {
	if a < AxisX || int(a) >= code.Dimension() {
		return nil, fmt.Errorf("AxisQubits(%s) in %dD: %w", a, code.Dimension(), ErrInvalidAxis)
	}
	idx := code.Qubits()
	var out []int
	for q := 0; q < idx.Len(); q++ {
		c, _ := idx.At(q)
		if axis, err := code.QubitAxis(c); err == nil && axis == a {
			out = append(out, q)
		}
	}
	return out, nil
}

// Deform exchanges X and Z on every qubit along a, returning a new vector.
// This is the Clifford deformation that turns the stabilizers of a
// deformed-axis code into those of the undeformed one and back.
func Deform(code Code, v *gf2.Vector, a Axis) (*gf2.Vector, error) {
	qs, err := AxisQubits(code, a)
	if err != nil {
		return nil, err
	}
	return gf2.ApplyDeformation(v, qs)
}
