package main

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"game-of-life/internal/stats"
	"game-of-life/pkg/sims/life"
)

type surveyConfig struct {
	width     int
	height    int
	density   float64
	baseSeed  int64
	soups     int
	workers   int
	maxGens   int
	window    int
	threshold int
}

type soupResult struct {
	seed     int64
	settled  bool
	settleAt int
	initial  int
	final    int
	peak     int
}

func (r soupResult) String() string {
	state := fmt.Sprintf("settled at gen %d", r.settleAt)
	if !r.settled {
		state = "still active"
	}
	return fmt.Sprintf("seed=%d %s initial=%d final=%d peak=%d", r.seed, state, r.initial, r.final, r.peak)
}

// runSoup advances a random soup until its population has stayed within
// threshold for window generations, or maxGens is reached.
func runSoup(ctx context.Context, cfg surveyConfig, seed int64) (soupResult, error) {
	g := life.NewWithConfig(life.Config{Width: cfg.width, Height: cfg.height, Density: cfg.density})
	g.RandomizeSeeded(cfg.density, seed)
	hist := stats.New(cfg.window)
	res := soupResult{seed: seed, initial: g.Population()}
	res.peak = res.initial
	hist.Add(res.initial)
	for gen := 1; gen <= cfg.maxGens; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		g.NextGeneration()
		pop := g.Population()
		hist.Add(pop)
		res.peak = max(res.peak, pop)
		if hist.Stable(cfg.window, cfg.threshold) {
			res.settled = true
			res.settleAt = gen - cfg.window + 1
			break
		}
	}
	res.final = g.Population()
	return res, nil
}

// survey runs cfg.soups soups on at most cfg.workers goroutines. Soup i uses
// seed baseSeed+i, so a survey is reproducible. Results are sorted with the
// longest-lived soups first.
func survey(ctx context.Context, cfg surveyConfig) ([]soupResult, error) {
	if cfg.soups <= 0 {
		return nil, nil
	}
	if cfg.window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", cfg.window)
	}
	results := make([]soupResult, cfg.soups)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(cfg.workers, 1))
	for i := range results {
		eg.Go(func() error {
			res, err := runSoup(ctx, cfg, cfg.baseSeed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.settled != b.settled {
			return !a.settled
		}
		return a.settleAt > b.settleAt
	})
	return results, nil
}
