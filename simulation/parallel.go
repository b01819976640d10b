// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvqec/noise"
)

// RunParallel splits trials across the configured number of workers. Worker
// w draws from its own stream derived from (seed, key, w+1), so results
// depend on seed and worker count only, never on scheduling. Workers never
// cancel each other: trial errors are counted and joined, and only ctx
// stops the run early.
func (s *Simulation) RunParallel(ctx context.Context, trials int, seed int64) (Stats, error) {
	counts, err := SplitTrials(trials, s.opts.workers)
	if err != nil {
		return Stats{}, fmt.Errorf("RunParallel: %w", err)
	}

	var (
		mu    sync.Mutex
		errs  []error
		total = newStats(s.code.NKD().K)
		g     errgroup.Group
	)
	g.SetLimit(s.opts.workers)
	for w, n := range counts {
		if n == 0 {
			continue
		}
		g.Go(func() error {
			rng := noise.NewRNG(DeriveSeed(seed, s.key.String(), uint64(w+1)))
			st, err := s.run(ctx, n, rng, s.opts.logger.WithWorker(w))
			mu.Lock()
			defer mu.Unlock()
			total.Merge(st)
			if err != nil {
				errs = append(errs, fmt.Errorf("worker %d: %w", w, err))
			}
			return nil
		})
	}
	if werr := g.Wait(); werr != nil {
		errs = append(errs, werr)
	}
	err = errors.Join(errs...)
	s.opts.metrics.RecordRun(total)
	s.opts.logger.LogRun(ctx, total, err)
	return total, err
}
