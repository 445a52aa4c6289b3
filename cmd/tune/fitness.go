package main

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/game"
	"github.com/pthm-cable/bigfish/telemetry"
)

// invalidFitness is returned for parameter vectors that fail validation.
const invalidFitness = 1e6

// FitnessEvaluator runs headless autopilot games and scores how close the
// resulting catch rate is to a target.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	target      float64
	statsWindow float64

	mu       sync.Mutex
	lastRate float64
}

// NewFitnessEvaluator creates a new evaluator aiming for targetCatchRate.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, targetCatchRate float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		target:      targetCatchRate,
		statsWindow: 10.0,
	}
}

// LastCatchRate returns the mean catch rate of the most recent evaluation.
func (fe *FitnessEvaluator) LastCatchRate() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastRate
}

// runResult holds the window stats of one game.
type runResult struct {
	windows []telemetry.WindowStats
	err     error
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is the squared distance of the mean catch rate from the target,
// plus the variance across windows so steady difficulty wins over swings.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return invalidFitness
	}

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var rates []float64
	for _, r := range results {
		if r.err != nil {
			return invalidFitness
		}
		for _, w := range r.windows {
			if w.Spawned > 0 {
				rates = append(rates, w.CatchRate)
			}
		}
	}

	fitness := fe.score(rates)

	fe.mu.Lock()
	if len(rates) > 0 {
		fe.lastRate = stat.Mean(rates, nil)
	} else {
		fe.lastRate = 0
	}
	fe.mu.Unlock()

	return fitness
}

// score turns per-window catch rates into a fitness value.
func (fe *FitnessEvaluator) score(rates []float64) float64 {
	if len(rates) == 0 {
		// Nothing spawned: as far from any target as possible
		return 1 + fe.target*fe.target
	}
	mean := stat.Mean(rates, nil)
	diff := mean - fe.target
	if len(rates) < 2 {
		return diff * diff
	}
	return diff*diff + stat.Variance(rates, nil)
}

// runSimulation plays one autopilot game to maxTicks. cfg is shared
// read-only between seeds.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) runResult {
	var result runResult

	g, err := game.NewGame(cfg, game.Options{
		Seed:           seed,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: game.MaxSpeed,
		Autopilot:      true,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windows = append(result.windows, stats)
		},
	})
	if err != nil {
		result.err = err
		return result
	}
	defer g.Close()

	for g.Tick() < fe.maxTicks {
		_ = g.Update()
	}
	return result
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	c := *fe.baseConfig
	return &c
}
