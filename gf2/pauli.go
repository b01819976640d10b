// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"
	"strings"
)

// Pauli is a single-qubit Pauli label.
type Pauli uint8

const (
	// I is the identity.
	I Pauli = iota
	// X is the bit flip.
	X
	// Y is the combined bit and phase flip (X and Z bits both set).
	Y
	// Z is the phase flip.
	Z
)

// String returns the one-letter label.
func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Pauli(%d)", uint8(p))
	}
}

// Bits returns the symplectic (x, z) components of p.
func (p Pauli) Bits() (x, z bool) {
	return p == X || p == Y, p == Z || p == Y
}

// PauliFromBits is the inverse of Pauli.Bits.
func PauliFromBits(x, z bool) Pauli {
	switch {
	case x && z:
		return Y
	case x:
		return X
	case z:
		return Z
	default:
		return I
	}
}

// ParsePauli parses a one-letter label. Only the upper-case letters
// I, X, Y and Z are accepted.
func ParsePauli(s string) (Pauli, error) {
	switch s {
	case "I":
		return I, nil
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	}
	return I, fmt.Errorf("ParsePauli(%q): %w", s, ErrUnknownPauli)
}

// PauliString renders a symplectic vector as an n-letter Pauli string,
// qubit 0 first.
func PauliString(v *Vector) (string, error) {
	n, err := qubitCount(v)
	if err != nil {
		return "", gf2Errorf("PauliString", err)
	}
	var sb strings.Builder
	sb.Grow(n)
	for q := 0; q < n; q++ {
		sb.WriteString(PauliFromBits(v.Test(q), v.Test(q+n)).String())
	}
	return sb.String(), nil
}

// ParsePauliString is the inverse of PauliString: it returns the length-2n
// symplectic vector of an n-letter Pauli string.
func ParsePauliString(s string) (*Vector, error) {
	n := len(s)
	v := newVector(2 * n)
	for q := 0; q < n; q++ {
		p, err := ParsePauli(s[q : q+1])
		if err != nil {
			return nil, gf2Errorf("ParsePauliString", err)
		}
		x, z := p.Bits()
		if x {
			v.bits.Set(uint(q))
		}
		if z {
			v.bits.Set(uint(q + n))
		}
	}
	return v, nil
}
