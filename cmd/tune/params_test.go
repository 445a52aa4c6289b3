package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/bigfish/config"
)

func TestParamVectorNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s default = %v, config has %v", spec.Path, spec.Default, got[i])
		}
	}
}

func TestApplyToConfigClampsIntoValidConfig(t *testing.T) {
	pv := NewParamVector()

	tests := []struct {
		name   string
		values []float64
	}{
		{"defaults", pv.DefaultVector()},
		{"below bounds", []float64{-1e6, -1e6, -1e6, -1e6, -1e6}},
		{"above bounds", []float64{1e6, 1e6, 1e6, 1e6, 1e6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if err := pv.ApplyToConfig(cfg, tt.values); err != nil {
				t.Fatalf("ApplyToConfig: %v", err)
			}
			got := pv.ExtractFromConfig(cfg)
			for i, spec := range pv.Specs {
				if got[i] < spec.Min || got[i] > spec.Max {
					t.Errorf("%s = %v outside [%v, %v]", spec.Path, got[i], spec.Min, spec.Max)
				}
			}
			if cfg.Spawner.MinVelocity > cfg.Spawner.MaxVelocity {
				t.Errorf("velocity range inverted: %d > %d", cfg.Spawner.MinVelocity, cfg.Spawner.MaxVelocity)
			}
		})
	}
}

func TestScorePrefersTarget(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), 0, nil, config.Default(), 0.5)

	onTarget := fe.score([]float64{0.5, 0.5, 0.5})
	off := fe.score([]float64{0.9, 0.9, 0.9})
	noisy := fe.score([]float64{0.1, 0.9, 0.1, 0.9})
	empty := fe.score(nil)

	if onTarget != 0 {
		t.Errorf("on-target score = %v, want 0", onTarget)
	}
	if !(off > onTarget) {
		t.Errorf("off-target %v should score worse than %v", off, onTarget)
	}
	if !(noisy > onTarget) {
		t.Errorf("noisy %v should score worse than steady %v", noisy, onTarget)
	}
	if !(empty > off) {
		t.Errorf("empty %v should score worse than any run %v", empty, off)
	}
}

func TestEvaluateShortRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs full games")
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 1200, []int64{1, 2}, config.Default(), 0.5)

	fitness := fe.Evaluate(pv.DefaultVector())
	if math.IsNaN(fitness) || fitness < 0 || fitness >= invalidFitness {
		t.Fatalf("fitness = %v, want a finite valid score", fitness)
	}
	if rate := fe.LastCatchRate(); rate < 0 {
		t.Errorf("catch rate = %v, want non-negative", rate)
	}
}
