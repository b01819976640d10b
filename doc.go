// SPDX-License-Identifier: MIT

// Package lvqec simulates quantum error correction on topological
// stabilizer codes, from lattice construction through noise sampling,
// decoding and logical-failure statistics.
//
// What is lvqec?
//
//	A Go toolkit for Monte Carlo threshold studies:
//		• GF(2) symplectic algebra: bit vectors & matrices, BSF Paulis
//		• Lattices: 3D toric, 2D toric and planar codes on a coordinate grid
//		• Noise: biased Pauli, axis-deformed and randomly deformed models
//		• Decoding: the 3D toric sweep decoder with cycle detection
//		• Simulation: deterministic, seeded, parallel trial runs
//		• Results: JSON-lines records, zstd or lz4 compressed
//
// Packages:
//
//	gf2/        — bit vectors, matrices and the symplectic product
//	lattice/    — codes, coordinate indices, operators and syndromes
//	noise/      — error models and seeded sampling
//	decoder/    — the sweep decoder and its step-wise operations
//	simulation/ — trials, runs, batch partitioning, logging & metrics
//	results/    — records, merging and compressed streams
//	config/     — input files, the component registry and input generation
//
// Quick example (3x3x3 toric code, single Z error on an x-edge):
//
//	code, _ := lattice.NewToric3D(3, 3, 3)
//	op := lattice.NewOperator(code)
//	if err := op.Site(gf2.Z, lattice.C(1, 0, 0)); err != nil {
//		log.Fatal(err)
//	}
//	syn, _ := lattice.MeasureSyndrome(code, op.BSF())
//	correction, _ := decoder.NewSweep3D().Decode(code, syn)
//
// See examples/threshold_scan for a complete threshold run.
package lvqec
