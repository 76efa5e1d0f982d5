// Package sweep runs many randomized universes headless and reports when
// each one settles into a still life or oscillator.
package sweep

import (
	"context"
	"crypto/md5"
	"runtime"

	"conway-life/internal/life"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Options controls a sweep.
type Options struct {
	Layout    life.Layout
	Density   float64
	FirstSeed int64
	Runs      int
	MaxSteps  int
	Workers   int
}

// Result summarises one seed.
type Result struct {
	Seed           int64
	Settled        bool
	SettledAt      int
	Period         int
	Population     int
	PeakPopulation int
}

// Run simulates Runs consecutive seeds in parallel. Results come back in
// seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, errors.Errorf("runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxSteps <= 0 {
		return nil, errors.Errorf("max steps must be positive, got %d", opts.MaxSteps)
	}
	if !opts.Layout.Valid() {
		return nil, errors.New("layout has no playable cells")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			res, err := runSeed(ctx, opts, opts.FirstSeed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "sweep interrupted")
	}
	return results, nil
}

func runSeed(ctx context.Context, opts Options, seed int64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	u := life.New(opts.Layout, seed)
	u.SetDensity(opts.Density)
	u.Randomize()

	res := Result{Seed: seed, Population: u.Population(), PeakPopulation: u.Population()}
	seen := map[[md5.Size]byte]int{u.Fingerprint(): 0}
	for step := 1; step <= opts.MaxSteps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		u.Step()
		pop := u.Population()
		res.Population = pop
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		fp := u.Fingerprint()
		if first, ok := seen[fp]; ok {
			res.Settled = true
			res.SettledAt = first
			res.Period = step - first
			return res, nil
		}
		seen[fp] = step
	}
	return res, nil
}
