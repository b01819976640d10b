// SPDX-License-Identifier: MIT

package decoder

import "github.com/bits-and-blooms/bitset"

// Signs marks the currently unsatisfied face checks, one bit per dense face
// index of the code.
type Signs struct {
	n    int
	bits *bitset.BitSet
}

func newSigns(n int) *Signs {
	return &Signs{n: n, bits: bitset.New(uint(n))}
}

// Len returns the number of faces.
func (s *Signs) Len() int { return s.n }

// Test reports whether face i is unsatisfied.
func (s *Signs) Test(i int) bool {
	return i >= 0 && i < s.n && s.bits.Test(uint(i))
}

// Weight returns the number of unsatisfied faces.
func (s *Signs) Weight() int { return int(s.bits.Count()) }

// IsZero reports whether every face is satisfied.
func (s *Signs) IsZero() bool { return s.bits.None() }

// Ones returns the unsatisfied face indices in increasing order.
func (s *Signs) Ones() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Clone returns a deep copy.
func (s *Signs) Clone() *Signs {
	return &Signs{n: s.n, bits: s.bits.Clone()}
}

// Equal reports whether both hold the same configuration.
func (s *Signs) Equal(o *Signs) bool {
	return s.n == o.n && s.bits.Equal(o.bits)
}
