// SPDX-License-Identifier: MIT

// Package noise provides Pauli error models for Monte Carlo simulation of
// stabilizer codes.
//
// An ErrorModel answers two questions for a code and a physical error rate p:
//
//   - ProbabilityDistribution: the per-qubit probabilities (p_I, p_X, p_Y, p_Z),
//     each summing to 1 at every qubit.
//   - Generate: a random error drawn from that distribution, returned as a
//     length-2n binary symplectic vector.
//
// Models:
//
//   - Pauli: independent, identically distributed Pauli noise with the
//     direction (r_x, r_y, r_z) splitting p between X, Y and Z.
//   - DeformedAxis: Pauli noise whose X and Z rates are exchanged on every
//     qubit oriented along one lattice axis.
//   - DeformedRandom: Pauli noise where each qubit independently draws one of
//     {identity, XZ-swap, YZ-swap}. The draw is repeated on every call.
//
// DirectionFromBias converts a bias ratio η into a direction.
//
// Randomness:
//
// Models never own global state. Generate takes the caller's *rand.Rand; a
// nil generator falls back to a fixed default seed so results stay
// reproducible. *rand.Rand is not goroutine-safe: give every worker its own
// stream via DeriveRNG.
package noise
