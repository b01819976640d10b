// SPDX-License-Identifier: MIT

// Package lattice builds topological stabilizer codes on periodic and open
// integer lattices.
//
// What:
//
//   - Coordinates use the doubled-lattice convention: on an Lx×Ly(×Lz) code
//     every coordinate axis runs over 0..2L-1. Vertices sit at all-even
//     coordinates, edges (qubits) have exactly one odd component, faces have
//     exactly two.
//   - Index: an immutable bijection between coordinates and dense integers.
//   - Code: qubit/vertex/face indices, stabilizer matrix, Hx/Hz parity checks
//     and lazily cached logical operators.
//   - Toric3D, Toric2D, Planar2D, RotatedToric3D and RotatedPlanar3D
//     implement Code. The rotated codes keep layer qubits on (odd,odd,odd)
//     points and checks on an (even,even) checkerboard; see rotated3d.go.
//   - Operator builds Pauli operators site by site and converts them to BSF.
//   - MeasureSyndrome, InCodespace and LogicalErrors evaluate operators
//     against a code.
//
// Conventions:
//
//   - Stabilizer rows are ordered faces first, then vertices. Faces are
//     X-type checks, vertices are Z-type checks, so the first Faces().Len()
//     syndrome bits detect Z errors and the remaining bits detect X errors.
//   - Hz has one row per face, Hx one row per vertex; both have n columns.
//
// Complexity:
//
//   - Construction: O(n) time and memory.
//   - Logical operators: O(n) on first access, cached afterwards.
//
// Errors:
//
//   - ErrInvalidSize: a lattice dimension below the supported minimum.
//   - ErrInvalidCoordinate: a coordinate missing from the requested index.
//   - ErrInvalidAxis: an axis outside {x, y, z} or beyond the code dimension.
package lattice
