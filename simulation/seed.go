// SPDX-License-Identifier: MIT

package simulation

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// DeriveSeed hashes a base seed, a label and a stream index with SHAKE128
// into a 63-bit seed. Different labels or streams give independent seeds;
// equal inputs always give the same seed.
func DeriveSeed(base int64, label string, stream uint64) int64 {
	var buf [8]byte
	h := sha3.NewShake128()
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	h.Write(buf[:])
	h.Write([]byte(label))
	binary.LittleEndian.PutUint64(buf[:], stream)
	h.Write(buf[:])
	h.Read(buf[:])
	s := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if s == 0 {
		s = 1
	}
	return s
}
