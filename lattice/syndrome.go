// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvqec/gf2"
)

// MeasureSyndrome returns the syndrome of a symplectic error vector:
// bit i is 1 when stabilizer row i anticommutes with e. The first
// Faces().Len() bits are the face (X-check) outcomes.
func MeasureSyndrome(code Code, e *gf2.Vector) (*gf2.Vector, error) {
	s, err := gf2.CommuteVec(code.Stabilizers(), e)
	if err != nil {
		return nil, fmt.Errorf("MeasureSyndrome(%s): %w", code.Label(), err)
	}
	return s, nil
}

// SyndromeLength is the number of check bits: faces plus vertices.
func SyndromeLength(code Code) int {
	return code.Faces().Len() + code.Vertices().Len()
}

// FaceSyndrome returns the face-check block of a full syndrome.
func FaceSyndrome(code Code, syndrome *gf2.Vector) (*gf2.Vector, error) {
	return syndromeBlock(code, syndrome, 0, code.Faces().Len())
}

// VertexSyndrome returns the vertex-check block of a full syndrome.
func VertexSyndrome(code Code, syndrome *gf2.Vector) (*gf2.Vector, error) {
	nf := code.Faces().Len()
	return syndromeBlock(code, syndrome, nf, nf+code.Vertices().Len())
}

func syndromeBlock(code Code, syndrome *gf2.Vector, lo, hi int) (*gf2.Vector, error) {
	if syndrome == nil || syndrome.Len() != SyndromeLength(code) {
		return nil, fmt.Errorf("syndrome block of %s: %w", code.Label(), gf2.ErrDimensionMismatch)
	}
	out, err := gf2.NewVector(hi - lo)
	if err != nil {
		return nil, fmt.Errorf("syndrome block of %s: %w", code.Label(), err)
	}
	for _, i := range syndrome.Ones() {
		if i < lo || i >= hi {
			continue
		}
		if err = out.Flip(i - lo); err != nil {
			return nil, fmt.Errorf("syndrome block of %s: %w", code.Label(), err)
		}
	}
	return out, nil
}

// InCodespace reports whether e commutes with every stabilizer.
func InCodespace(code Code, e *gf2.Vector) (bool, error) {
	s, err := MeasureSyndrome(code, e)
	if err != nil {
		return false, err
	}
	return s.IsZero(), nil
}

// LogicalErrors returns the 2k-bit vector of anticommutation outcomes of e
// against the logical operators: bits [0,k) against LogicalXs, bits [k,2k)
// against LogicalZs. A residual error in the codespace with a non-zero
// result is a logical failure.
func LogicalErrors(code Code, e *gf2.Vector) (*gf2.Vector, error) {
	logicals, err := gf2.Stack(code.LogicalXs(), code.LogicalZs())
	if err != nil {
		return nil, err
	}
	out, err := gf2.CommuteVec(logicals, e)
	if err != nil {
		return nil, fmt.Errorf("LogicalErrors(%s): %w", code.Label(), err)
	}
	return out, nil
}
