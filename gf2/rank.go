// SPDX-License-Identifier: MIT

package gf2

import "github.com/bits-and-blooms/bitset"

// Rank returns the GF(2) row rank of m via Gaussian elimination.
// The input is not modified.
//
// Implementation:
//   - Stage 1: copy each row into a dense bitset.
//   - Stage 2: reduce each row by the pivot owning its leading bit until it
//     either vanishes or claims a fresh pivot column.
//
// Complexity: O(r·p·c/64) for r rows, p pivots and c columns.
func Rank(m *Matrix) int {
	if m == nil {
		return 0
	}
	pivots := make(map[uint]*bitset.BitSet, len(m.rows))
	rank := 0
	for _, row := range m.rows {
		r := bitset.New(uint(m.cols))
		row.Iterate(func(c uint32) bool {
			r.Set(uint(c))
			return true
		})
		for {
			lead, ok := r.NextSet(0)
			if !ok {
				break
			}
			p, seen := pivots[lead]
			if !seen {
				pivots[lead] = r
				rank++
				break
			}
			r.InPlaceSymmetricDifference(p)
		}
	}
	return rank
}
