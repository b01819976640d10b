// SPDX-License-Identifier: MIT

// Package gf2 implements binary linear algebra over GF(2) and the binary
// symplectic form used to represent Pauli operators.
//
// What:
//
//   - Vector: a fixed-length bit vector backed by bits-and-blooms/bitset.
//   - Matrix: a sparse row matrix whose rows are roaring bitmaps.
//   - Pauli labels (I, X, Y, Z) and the symplectic encoding of n-qubit
//     Pauli operators as length-2n vectors: bits [0,n) hold the X component,
//     bits [n,2n) hold the Z component, Y sets both.
//   - Commute, CommuteVec: batched symplectic inner products
//     (A_X·B_Z + A_Z·B_X) mod 2.
//   - Weight, PauliWeight, Rank and ApplyDeformation.
//
// Determinism:
//
//   - Every operation is exact integer/bit arithmetic. No floating point,
//     no randomness, no hidden global state.
//
// Complexity:
//
//   - Commute(A, B): O(|A|·|B|·w) where w is the mean row weight.
//   - CommuteVec(M, v): O(nnz(M)).
//   - Rank(M): O(r·c·r/64) Gaussian elimination on packed rows.
//
// Errors:
//
//   - ErrBadLength: negative length or an odd length where a symplectic
//     (2n) vector is required.
//   - ErrOutOfRange: bit or row index outside valid bounds.
//   - ErrDimensionMismatch: operands with incompatible lengths.
//   - ErrUnknownPauli: label outside {I, X, Y, Z}.
package gf2
