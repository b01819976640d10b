// SPDX-License-Identifier: MIT

package simulation

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvqec/decoder"
)

// Collector receives per-trial and per-run measurements.
// Implementations must be safe for concurrent use.
type Collector interface {
	// RecordTrial is called after every trial; err is non-nil when the
	// trial could not be evaluated at all.
	RecordTrial(t Trial, err error)
	// RecordRun is called once per Run or RunParallel.
	RecordRun(s Stats)
}

// NoopCollector discards everything.
type NoopCollector struct{}

func (NoopCollector) RecordTrial(Trial, error) {}
func (NoopCollector) RecordRun(Stats)          {}

// BasicCollector keeps in-memory counters.
type BasicCollector struct {
	Trials      atomic.Int64
	Failures    atomic.Int64
	Errors      atomic.Int64
	Cycles      atomic.Int64
	SweepLimits atomic.Int64
	TotalNanos  atomic.Int64
	Runs        atomic.Int64
}

// RecordTrial implements Collector.
func (b *BasicCollector) RecordTrial(t Trial, err error) {
	if err != nil {
		b.Errors.Add(1)
		return
	}
	b.Trials.Add(1)
	b.TotalNanos.Add(t.Duration.Nanoseconds())
	if !t.Success {
		b.Failures.Add(1)
	}
	if t.Reported {
		switch t.Outcome {
		case decoder.Cycle:
			b.Cycles.Add(1)
		case decoder.SweepLimit:
			b.SweepLimits.Add(1)
		}
	}
}

// RecordRun implements Collector.
func (b *BasicCollector) RecordRun(Stats) { b.Runs.Add(1) }

// AvgTrial returns the mean trial duration.
func (b *BasicCollector) AvgTrial() time.Duration {
	n := b.Trials.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(b.TotalNanos.Load() / n)
}

// PrometheusCollector exports trial counters and a trial-latency histogram.
type PrometheusCollector struct {
	trials   *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	latency  prometheus.Histogram
	runs     prometheus.Counter
}

// NewPrometheusCollector creates the collectors and registers them on reg.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	c := &PrometheusCollector{
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvqec_trials_total",
			Help: "Monte Carlo trials by result.",
		}, []string{"result"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvqec_decode_outcomes_total",
			Help: "Sweep decoder terminations by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvqec_trial_duration_seconds",
			Help:    "Wall time of one trial: sample, measure, decode, verify.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvqec_runs_total",
			Help: "Completed simulation runs.",
		}),
	}
	for _, col := range []prometheus.Collector{c.trials, c.outcomes, c.latency, c.runs} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordTrial implements Collector.
func (c *PrometheusCollector) RecordTrial(t Trial, err error) {
	switch {
	case err != nil:
		c.trials.WithLabelValues("error").Inc()
		return
	case t.Success:
		c.trials.WithLabelValues("success").Inc()
	default:
		c.trials.WithLabelValues("failure").Inc()
	}
	c.latency.Observe(t.Duration.Seconds())
	if t.Reported {
		c.outcomes.WithLabelValues(t.Outcome.String()).Inc()
	}
}

// RecordRun implements Collector.
func (c *PrometheusCollector) RecordRun(Stats) { c.runs.Inc() }
