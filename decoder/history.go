// SPDX-License-Identifier: MIT

package decoder

import "github.com/cespare/xxhash/v2"

// history records visited sign configurations. Entries are bucketed by an
// xxhash fingerprint and confirmed by full comparison, so hash collisions
// never report a false cycle.
type history struct {
	seen map[uint64][]visit
}

type visit struct {
	sweep int
	signs *Signs
}

func newHistory() *history {
	return &history{seen: make(map[uint64][]visit)}
}

func fingerprint(s *Signs) uint64 {
	b, err := s.bits.MarshalBinary()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(b)
}

// lookupOrAdd returns the sweep at which s was first seen, or records s
// and returns -1.
func (h *history) lookupOrAdd(s *Signs, sweep int) int {
	key := fingerprint(s)
	for _, v := range h.seen[key] {
		if v.signs.Equal(s) {
			return v.sweep
		}
	}
	h.seen[key] = append(h.seen[key], visit{sweep: sweep, signs: s.Clone()})
	return -1
}
