// SPDX-License-Identifier: MIT

package results

import (
	"fmt"
	"sort"
)

// Merge sums records sharing a key. The output is sorted by key and never
// aliases the inputs.
//
// Complexity: O(R·(k + log R)) for R records with k logical counts.
func Merge(records ...Record) ([]Record, error) {
	byKey := make(map[Key]*Record, len(records))
	order := make([]Key, 0, len(records))
	for i := range records {
		rec := &records[i]
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("Merge: %w", err)
		}
		acc, ok := byKey[rec.Key]
		if !ok {
			c := rec.Clone()
			byKey[rec.Key] = &c
			order = append(order, rec.Key)
			continue
		}
		if err := acc.Add(rec); err != nil {
			return nil, fmt.Errorf("Merge: %w", err)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i].less(order[j]) })
	out := make([]Record, len(order))
	for i, k := range order {
		out[i] = *byKey[k]
	}
	return out, nil
}
