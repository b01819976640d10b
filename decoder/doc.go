// SPDX-License-Identifier: MIT

// Package decoder turns syndromes into correction operators.
//
// What:
//
//   - Decoder: the interface consumed by the simulation layer.
//   - Sweep3D: the local cellular-automaton sweep decoder for Z errors on
//     the 3D toric code. It repairs the face syndrome using only moves that
//     look at the three faces in the upper octant of each vertex, and it
//     detects its own non-termination.
//
// Sweep rule:
//
//	For every vertex v, read the faces in the +x,+y,+z octant of v from the
//	pre-sweep signs: xf (spanned by +y,+z), yf (+x,+z), zf (+x,+y).
//	  all three set  -> flip the edge along the default direction (x)
//	  yf and zf      -> flip the +x edge of v
//	  xf and zf      -> flip the +y edge of v
//	  xf and yf      -> flip the +z edge of v
//	All flips of one sweep are collected first and applied together;
//	flipping an edge toggles the four faces of its coboundary and the Z
//	bit of that qubit in the correction.
//
// Termination:
//
//   - Converged: the signs reach all-zero.
//   - Cycle: the signs return to a configuration already visited. The
//     sweep map is deterministic, so a revisit proves the decoder would
//     loop forever.
//   - SweepLimit: MaxSweepFactor·max(Lx,Ly,Lz) sweeps ran without either.
//
// Decoding failure is an outcome, not an error: Decode always returns the
// best-effort correction and callers verify it against the stabilizers.
//
// Errors:
//
//   - ErrUnsupportedCode: the code is not a *lattice.Toric3D.
//   - ErrDimensionMismatch: syndrome length differs from the check count.
package decoder
