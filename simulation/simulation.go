// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvqec/decoder"
	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/noise"
	"github.com/katalvlaran/lvqec/results"
)

// Simulation binds a code, an error model, a decoder and an error rate.
// It is immutable and safe for concurrent use when its decoder is.
type Simulation struct {
	code  lattice.Code
	model noise.ErrorModel
	dec   decoder.Decoder
	p     float64
	key   results.Key
	opts  options
}

// New validates the components and returns a Simulation.
func New(code lattice.Code, model noise.ErrorModel, dec decoder.Decoder, p float64, opts ...Option) (*Simulation, error) {
	if code == nil || model == nil || dec == nil {
		return nil, fmt.Errorf("New: %w", ErrNilComponent)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("New: p=%v: %w", p, noise.ErrInvalidProbability)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	key := results.Key{
		Code:        code.Label(),
		ErrorModel:  model.Label(),
		Decoder:     dec.Label(),
		Probability: p,
	}
	o.logger = o.logger.WithRun(key.String())
	return &Simulation{code: code, model: model, dec: dec, p: p, key: key, opts: o}, nil
}

// Key identifies the experiment.
func (s *Simulation) Key() results.Key { return s.key }

// Code returns the simulated code.
func (s *Simulation) Code() lattice.Code { return s.code }

// Trial is the outcome of one sample-decode-verify cycle.
type Trial struct {
	// ErrorWeight is the number of qubits hit by the sampled error.
	ErrorWeight int
	// Codespace is true when the residual error has a trivial syndrome.
	Codespace bool
	// LogicalErrors lists the logical operators the residual anticommutes
	// with, indexed as in lattice.LogicalErrors.
	LogicalErrors []int
	// Success means the residual is a stabilizer.
	Success bool

	// Reported is set when the decoder implements decoder.Reporter; Outcome
	// and Sweeps are only meaningful then.
	Reported bool
	Outcome  decoder.Outcome
	Sweeps   int

	Duration time.Duration
}

// RunTrial samples one error with rng, decodes its syndrome and checks the
// residual.
func (s *Simulation) RunTrial(rng *rand.Rand) (Trial, error) {
	start := time.Now()
	var t Trial

	e, err := s.model.Generate(s.code, s.p, rng)
	if err != nil {
		return t, fmt.Errorf("RunTrial: generate: %w", err)
	}
	if t.ErrorWeight, err = gf2.PauliWeight(e); err != nil {
		return t, fmt.Errorf("RunTrial: generate: %w", err)
	}
	syndrome, err := lattice.MeasureSyndrome(s.code, e)
	if err != nil {
		return t, fmt.Errorf("RunTrial: %w", err)
	}

	var correction *gf2.Vector
	if rep, ok := s.dec.(decoder.Reporter); ok {
		r, err := rep.DecodeReport(s.code, syndrome)
		if err != nil {
			return t, fmt.Errorf("RunTrial: decode: %w", err)
		}
		correction = r.Correction
		t.Reported, t.Outcome, t.Sweeps = true, r.Outcome, r.Sweeps
	} else if correction, err = s.dec.Decode(s.code, syndrome); err != nil {
		return t, fmt.Errorf("RunTrial: decode: %w", err)
	}

	residual, err := gf2.Sum(e, correction)
	if err != nil {
		return t, fmt.Errorf("RunTrial: correction: %w", err)
	}
	if t.Codespace, err = lattice.InCodespace(s.code, residual); err != nil {
		return t, fmt.Errorf("RunTrial: %w", err)
	}
	logical, err := lattice.LogicalErrors(s.code, residual)
	if err != nil {
		return t, fmt.Errorf("RunTrial: %w", err)
	}
	t.LogicalErrors = logical.Ones()
	t.Success = t.Codespace && len(t.LogicalErrors) == 0
	t.Duration = time.Since(start)
	return t, nil
}

// Stats accumulates trials.
type Stats struct {
	Trials   int64
	Failures int64
	// LogicalErrors has 2k entries, X logicals first.
	LogicalErrors []int64
	// Unconverged counts failures whose residual left a non-zero syndrome.
	Unconverged int64
	Cycles      int64
	SweepLimits int64
	// Errors counts trials that returned an error; they are not in Trials.
	Errors   int64
	WallTime time.Duration
}

func newStats(k int) Stats {
	return Stats{LogicalErrors: make([]int64, 2*k)}
}

// ErrorRate returns Failures/Trials, 0 when empty.
func (s Stats) ErrorRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Failures) / float64(s.Trials)
}

func (s *Stats) add(t Trial) {
	s.Trials++
	if !t.Success {
		s.Failures++
	}
	if !t.Codespace {
		s.Unconverged++
	}
	for _, i := range t.LogicalErrors {
		if i < len(s.LogicalErrors) {
			s.LogicalErrors[i]++
		}
	}
	if t.Reported {
		switch t.Outcome {
		case decoder.Cycle:
			s.Cycles++
		case decoder.SweepLimit:
			s.SweepLimits++
		}
	}
}

// Merge adds o into s. WallTime is summed, so for a parallel run it is the
// total worker time, not the elapsed time.
func (s *Stats) Merge(o Stats) {
	s.Trials += o.Trials
	s.Failures += o.Failures
	s.Unconverged += o.Unconverged
	s.Cycles += o.Cycles
	s.SweepLimits += o.SweepLimits
	s.Errors += o.Errors
	s.WallTime += o.WallTime
	if len(s.LogicalErrors) < len(o.LogicalErrors) {
		grown := make([]int64, len(o.LogicalErrors))
		copy(grown, s.LogicalErrors)
		s.LogicalErrors = grown
	}
	for i, c := range o.LogicalErrors {
		s.LogicalErrors[i] += c
	}
}

// Record converts s into a persisted result record.
func (s *Simulation) Record(st Stats) results.Record {
	nkd := s.code.NKD()
	return results.Record{
		Key:           s.key,
		Size:          s.code.Size(),
		N:             nkd.N,
		K:             nkd.K,
		D:             nkd.D,
		Trials:        st.Trials,
		Failures:      st.Failures,
		LogicalErrors: append([]int64(nil), st.LogicalErrors...),
		Cycles:        st.Cycles,
		SweepLimits:   st.SweepLimits,
		WallTime:      st.WallTime,
	}
}

// Run executes trials sequentially from a stream seeded by seed and the
// experiment key. A failing trial is counted in Stats.Errors and sampling
// goes on; the returned error then wraps ErrTrialFailed and the first
// trial errors. Only a cancelled ctx stops the run early.
func (s *Simulation) Run(ctx context.Context, trials int, seed int64) (Stats, error) {
	if trials < 0 {
		return Stats{}, fmt.Errorf("Run: %d: %w", trials, ErrInvalidTrials)
	}
	rng := noise.NewRNG(DeriveSeed(seed, s.key.String(), 0))
	st, err := s.run(ctx, trials, rng, s.opts.logger)
	s.opts.metrics.RecordRun(st)
	s.opts.logger.LogRun(ctx, st, err)
	return st, err
}

// run is the trial loop shared by Run and every RunParallel worker.
func (s *Simulation) run(ctx context.Context, trials int, rng *rand.Rand, log *Logger) (Stats, error) {
	st := newStats(s.code.NKD().K)
	var (
		progress *rate.Sometimes
		failed   trialErrors
	)
	if s.opts.progress > 0 {
		progress = &rate.Sometimes{Interval: s.opts.progress}
	}
	start := time.Now()

	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			st.WallTime = time.Since(start)
			return st, errors.Join(err, failed.err())
		}
		t, err := s.RunTrial(rng)
		s.opts.metrics.RecordTrial(t, err)
		if err != nil {
			st.Errors++
			failed.add(i, err)
			continue
		}
		st.add(t)
		if progress != nil {
			progress.Do(func() { log.LogProgress(ctx, i+1, trials, st.Failures) })
		}
	}
	st.WallTime = time.Since(start)
	return st, failed.err()
}

// maxKeptErrors bounds how many trial errors a run keeps verbatim.
const maxKeptErrors = 8

type trialErrors struct {
	n    int
	kept []error
}

func (e *trialErrors) add(i int, err error) {
	e.n++
	if len(e.kept) < maxKeptErrors {
		e.kept = append(e.kept, fmt.Errorf("trial %d: %w", i, err))
	}
}

func (e *trialErrors) err() error {
	if e.n == 0 {
		return nil
	}
	head := fmt.Errorf("%d trials: %w", e.n, ErrTrialFailed)
	return errors.Join(append([]error{head}, e.kept...)...)
}
