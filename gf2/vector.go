// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a fixed-length vector over GF(2).
// The zero value is not usable; construct with NewVector, VectorOf or NewBSF.
// A Vector is not safe for concurrent mutation.
type Vector struct {
	n    int
	bits *bitset.BitSet
}

func newVector(n int) *Vector {
	return &Vector{n: n, bits: bitset.New(uint(n))}
}

// NewVector returns the all-zero vector of length n.
// Returns ErrBadLength when n < 0.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrBadLength)
	}
	return newVector(n), nil
}

// VectorOf returns a length-n vector with the listed positions set.
// Repeated positions toggle, so listing a position twice leaves it clear.
func VectorOf(n int, ones ...int) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for _, i := range ones {
		if err = v.Flip(i); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewBSF returns the identity operator on n qubits in binary symplectic
// form, i.e. the zero vector of length 2n.
func NewBSF(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBSF(%d): %w", n, ErrBadLength)
	}
	return newVector(2 * n), nil
}

// Len returns the vector length.
func (v *Vector) Len() int { return v.n }

// Test reports whether bit i is set. Out-of-range positions read as 0.
func (v *Vector) Test(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}
	return v.bits.Test(uint(i))
}

// Set assigns bit i.
func (v *Vector) Set(i int, bit bool) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.Set(%d) len=%d: %w", i, v.n, ErrOutOfRange)
	}
	v.bits.SetTo(uint(i), bit)
	return nil
}

// Flip toggles bit i.
func (v *Vector) Flip(i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.Flip(%d) len=%d: %w", i, v.n, ErrOutOfRange)
	}
	v.bits.Flip(uint(i))
	return nil
}

// Weight returns the Hamming weight.
func (v *Vector) Weight() int { return int(v.bits.Count()) }

// IsZero reports whether every bit is clear.
func (v *Vector) IsZero() bool { return v.bits.None() }

// Ones returns the set positions in increasing order.
func (v *Vector) Ones() []int {
	out := make([]int, 0, v.bits.Count())
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{n: v.n, bits: v.bits.Clone()}
}

// Equal reports whether v and o have the same length and bits.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.n == o.n && v.bits.Equal(o.bits)
}

// Add sets v = v + o (mod 2) in place.
func (v *Vector) Add(o *Vector) error {
	if o == nil {
		return gf2Errorf("Vector.Add", ErrNilOperand)
	}
	if v.n != o.n {
		return fmt.Errorf("Vector.Add(%d,%d): %w", v.n, o.n, ErrDimensionMismatch)
	}
	v.bits.InPlaceSymmetricDifference(o.bits)
	return nil
}

// Sum returns a + b (mod 2) as a new vector.
func Sum(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, gf2Errorf("Sum", ErrNilOperand)
	}
	out := a.Clone()
	if err := out.Add(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Dot returns the GF(2) inner product of v and o.
func (v *Vector) Dot(o *Vector) (bool, error) {
	if v.n != o.n {
		return false, fmt.Errorf("Vector.Dot(%d,%d): %w", v.n, o.n, ErrDimensionMismatch)
	}
	return v.bits.IntersectionCardinality(o.bits)&1 == 1, nil
}

// MarshalBinary exposes the packed bit layout, e.g. for hashing.
func (v *Vector) MarshalBinary() ([]byte, error) {
	return v.bits.MarshalBinary()
}

// String renders the vector as a string of '0' and '1', position 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ApplyPauli multiplies the Pauli p into qubit q of a symplectic vector,
// ignoring phase. Applying the same Pauli twice restores the original.
func (v *Vector) ApplyPauli(q int, p Pauli) error {
	n, err := qubitCount(v)
	if err != nil {
		return gf2Errorf("Vector.ApplyPauli", err)
	}
	if q < 0 || q >= n {
		return fmt.Errorf("Vector.ApplyPauli(%d) n=%d: %w", q, n, ErrOutOfRange)
	}
	if p > Z {
		return fmt.Errorf("Vector.ApplyPauli(%s): %w", p, ErrUnknownPauli)
	}
	x, z := p.Bits()
	if x {
		v.bits.Flip(uint(q))
	}
	if z {
		v.bits.Flip(uint(q + n))
	}
	return nil
}

// PauliAt returns the Pauli acting on qubit q of a symplectic vector.
// Out-of-range qubits read as I.
func (v *Vector) PauliAt(q int) Pauli {
	n := v.n / 2
	if q < 0 || q >= n {
		return I
	}
	return PauliFromBits(v.bits.Test(uint(q)), v.bits.Test(uint(q+n)))
}

// XBlock returns the first half of a symplectic vector.
func (v *Vector) XBlock() (*Vector, error) { return v.block(0) }

// ZBlock returns the second half of a symplectic vector.
func (v *Vector) ZBlock() (*Vector, error) { return v.block(1) }

func (v *Vector) block(k int) (*Vector, error) {
	n, err := qubitCount(v)
	if err != nil {
		return nil, err
	}
	out := newVector(n)
	lo, hi := uint(k*n), uint((k+1)*n)
	for i, ok := v.bits.NextSet(lo); ok && i < hi; i, ok = v.bits.NextSet(i + 1) {
		out.bits.Set(i - lo)
	}
	return out, nil
}

// qubitCount returns n for a length-2n symplectic vector.
func qubitCount(v *Vector) (int, error) {
	if v == nil {
		return 0, ErrNilOperand
	}
	if v.n%2 != 0 {
		return 0, ErrBadLength
	}
	return v.n / 2, nil
}
