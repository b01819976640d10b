// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// swapHalves returns row with its X and Z blocks exchanged:
// column c < n maps to c+n and column c >= n maps to c-n.
func swapHalves(row *roaring.Bitmap, n int) *roaring.Bitmap {
	out := roaring.New()
	half := uint32(n)
	row.Iterate(func(c uint32) bool {
		if c < half {
			out.Add(c + half)
		} else {
			out.Add(c - half)
		}
		return true
	})
	return out
}

// Commute returns the |a|×|b| matrix whose entry (i, j) is 1 when row i of a
// anticommutes with row j of b, i.e. (A_X·B_Z + A_Z·B_X) mod 2 = 1.
// Both operands must hold symplectic rows of the same even length.
//
// Complexity: O(|a|·|b|·w) for mean row weight w.
func Commute(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, gf2Errorf("Commute", ErrNilOperand)
	}
	if a.cols != b.cols {
		return nil, fmt.Errorf("Commute(cols %d,%d): %w", a.cols, b.cols, ErrDimensionMismatch)
	}
	if a.cols%2 != 0 {
		return nil, fmt.Errorf("Commute(cols %d): %w", a.cols, ErrBadLength)
	}
	n := a.cols / 2

	// Stage 1: pre-swap b once so each product is a single AndCardinality.
	swapped := make([]*roaring.Bitmap, len(b.rows))
	for j, row := range b.rows {
		swapped[j] = swapHalves(row, n)
	}

	// Stage 2: fill the product row by row.
	out := &Matrix{cols: len(b.rows), rows: make([]*roaring.Bitmap, len(a.rows))}
	for i, ra := range a.rows {
		row := roaring.New()
		for j, sb := range swapped {
			if ra.AndCardinality(sb)&1 == 1 {
				row.Add(uint32(j))
			}
		}
		out.rows[i] = row
	}
	return out, nil
}

// CommuteVec returns the bit vector whose entry i is 1 when row i of m
// anticommutes with the symplectic vector v. With m the stabilizer matrix
// this is the syndrome of v.
func CommuteVec(m *Matrix, v *Vector) (*Vector, error) {
	if m == nil || v == nil {
		return nil, gf2Errorf("CommuteVec", ErrNilOperand)
	}
	if m.cols != v.n {
		return nil, fmt.Errorf("CommuteVec(cols %d, len %d): %w", m.cols, v.n, ErrDimensionMismatch)
	}
	n, err := qubitCount(v)
	if err != nil {
		return nil, gf2Errorf("CommuteVec", err)
	}
	out := newVector(len(m.rows))
	for i, row := range m.rows {
		parity := false
		row.Iterate(func(c uint32) bool {
			// Pair the X bit of the row with the Z bit of v and vice versa.
			k := int(c) + n
			if int(c) >= n {
				k = int(c) - n
			}
			if v.bits.Test(uint(k)) {
				parity = !parity
			}
			return true
		})
		if parity {
			out.bits.Set(uint(i))
		}
	}
	return out, nil
}

// Weight returns the Hamming weight of v (X and Z bits counted separately,
// so a Y site counts twice).
func Weight(v *Vector) int {
	if v == nil {
		return 0
	}
	return v.Weight()
}

// PauliWeight returns the number of qubits on which the symplectic vector v
// acts non-trivially.
func PauliWeight(v *Vector) (int, error) {
	x, err := v.XBlock()
	if err != nil {
		return 0, gf2Errorf("PauliWeight", err)
	}
	z, err := v.ZBlock()
	if err != nil {
		return 0, gf2Errorf("PauliWeight", err)
	}
	return int(x.bits.UnionCardinality(z.bits)), nil
}

// ApplyDeformation returns a copy of v with the X and Z components exchanged
// on every listed qubit (a Hadamard-type Clifford deformation).
func ApplyDeformation(v *Vector, qubits []int) (*Vector, error) {
	n, err := qubitCount(v)
	if err != nil {
		return nil, gf2Errorf("ApplyDeformation", err)
	}
	out := v.Clone()
	for _, q := range qubits {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("ApplyDeformation(qubit %d) n=%d: %w", q, n, ErrOutOfRange)
		}
		x, z := v.bits.Test(uint(q)), v.bits.Test(uint(q+n))
		out.bits.SetTo(uint(q), z)
		out.bits.SetTo(uint(q+n), x)
	}
	return out, nil
}
