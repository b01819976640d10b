// SPDX-License-Identifier: MIT

package noise

import "math/rand"

// DefaultSeed is used whenever a caller passes seed 0 or a nil generator.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand. Seed 0 maps to DefaultSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent stream from base and a stream id.
// base.Int63 is consumed once, so repeated ids still give distinct children.
// A nil base uses DefaultSeed as the parent.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRNG(0)
	}
	return rng
}
