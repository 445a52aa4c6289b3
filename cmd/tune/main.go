// Command tune searches spawner and steering settings for a target
// difficulty, measured as the catch rate an autopilot player achieves.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/bigfish/config"
)

// EvalRow is one line of the tuning log.
type EvalRow struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	CatchRate   float64 `csv:"catch_rate"`
	IntervalMs  float64 `csv:"interval_ms"`
	MinVelocity float64 `csv:"min_velocity"`
	MaxVelocity float64 `csv:"max_velocity"`
	ScaleFactor float64 `csv:"scale_factor"`
	MaxSpeed    float64 `csv:"max_speed"`
}

func newEvalRow(eval int, fitness, catchRate float64, values []float64) EvalRow {
	return EvalRow{
		Eval:        eval,
		Fitness:     fitness,
		CatchRate:   catchRate,
		IntervalMs:  values[0],
		MinVelocity: values[1],
		MaxVelocity: values[2],
		ScaleFactor: values[3],
		MaxSpeed:    values[4],
	}
}

// formatDuration formats a duration as HhMMmSSs or MmSSs for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 36000, "Ticks per evaluation run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	target := flag.Float64("target", 0.5, "Target autopilot catch rate in [0, 1]")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	// Game logs are noise here; keep warnings and up
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(*configPath, *outputDir, int32(*maxTicks), *seeds, *maxEvals, *population, *target); err != nil {
		slog.Error("tuning failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, outputDir string, maxTicks int32, seeds, maxEvals, population int, target float64) error {
	if outputDir == "" {
		return fmt.Errorf("--output is required")
	}
	if target < 0 || target > 1 {
		return fmt.Errorf("--target must be in [0, 1], got %v", target)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()

	evalSeeds := make([]int64, seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, maxTicks, evalSeeds, baseCfg, target)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	popSize := population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: maxEvals,
		Concurrent:      0, // seeds already run in parallel
	}

	logFile, err := os.Create(filepath.Join(outputDir, "tune_log.csv"))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := invalidFitness
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			fitness := evaluator.Evaluate(raw)
			evalCount++

			clamped := params.Clamp(raw)
			if fitness < bestFitness || bestParams == nil {
				bestFitness = fitness
				bestParams = clamped
			}

			rows := []EvalRow{newEvalRow(evalCount, fitness, evaluator.LastCatchRate(), clamped)}
			var werr error
			if evalCount == 1 {
				werr = gocsv.Marshal(rows, logFile)
			} else {
				werr = gocsv.MarshalWithoutHeaders(rows, logFile)
			}
			if werr != nil {
				slog.Warn("writing tune log", "error", werr)
			}

			elapsed := time.Since(startTime)
			remaining := time.Duration(maxEvals-evalCount) * (elapsed / time.Duration(evalCount))
			fmt.Printf("Eval %d/%d: catch_rate=%.3f fitness=%.5f (best=%.5f) | elapsed: %s, ETA: %s\n",
				evalCount, maxEvals, evaluator.LastCatchRate(), fitness, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))
			return fitness
		},
	}

	fmt.Printf("Starting CMA-ES tuning with %d parameters, population=%d, max_evals=%d, target=%.2f\n",
		dim, popSize, maxEvals, target)
	fmt.Printf("Seeds per evaluation: %d, ticks per run: %d\n", seeds, maxTicks)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		// Hitting the evaluation cap ends the run with an error status
		slog.Warn("optimization ended", "error", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		return fmt.Errorf("no evaluations completed")
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.5f\n", bestFitness)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.3f\n", spec.Path, bestParams[i])
	}

	bestCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	if err := params.ApplyToConfig(bestCfg, bestParams); err != nil {
		return fmt.Errorf("applying best parameters: %w", err)
	}
	configOutPath := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		return err
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	return nil
}
