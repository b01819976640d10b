// SPDX-License-Identifier: MIT

package simulation

import (
	"runtime"
	"time"
)

// Option configures a Simulation.
type Option func(*options)

type options struct {
	logger   *Logger
	metrics  Collector
	workers  int
	progress time.Duration
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopCollector{},
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics collector. Panics on nil.
func WithMetrics(c Collector) Option {
	if c == nil {
		panic("simulation: WithMetrics(nil)")
	}
	return func(o *options) { o.metrics = c }
}

// WithWorkers bounds RunParallel's concurrency. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("simulation: WithWorkers(n) requires n >= 1")
	}
	return func(o *options) { o.workers = n }
}

// WithProgressInterval logs progress at most once per d; 0 disables it.
// Panics if d < 0.
func WithProgressInterval(d time.Duration) Option {
	if d < 0 {
		panic("simulation: WithProgressInterval(d) requires d >= 0")
	}
	return func(o *options) { o.progress = d }
}
