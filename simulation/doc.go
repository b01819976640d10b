// SPDX-License-Identifier: MIT

// Package simulation runs Monte Carlo decoding experiments: sample an error
// from a noise model, measure its syndrome, decode, and check whether the
// residual error is a stabilizer (success) or not (failure).
//
// The lattice, error model and decoder are read-only and shared across
// trials; every trial owns its random stream and its correction. Run executes
// trials sequentially, RunParallel spreads them over a bounded worker pool.
// Partition splits a batch job of many input files over nodes and cores.
//
// Decoding failure is a statistic, never an error: Stats counts failures per
// logical operator and, for decoders implementing decoder.Reporter, how often
// decoding stopped on a cycle or the sweep ceiling.
//
// Logging uses log/slog through Logger; metrics go to a Collector (no-op,
// in-memory atomics, or Prometheus).
package simulation
