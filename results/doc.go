// SPDX-License-Identifier: MIT

// Package results stores Monte Carlo outcomes as line-delimited JSON
// records and merges partial results produced by independent tasks.
//
// A Record is keyed by (code, error model, decoder, probability). Records
// with equal keys merge by summing trials, failures, per-logical counts and
// wall time, so an experiment split over many workers or many result
// directories recombines exactly.
//
// Streams may be plain, zstd or LZ4 compressed; Open detects which from the
// first bytes.
package results
