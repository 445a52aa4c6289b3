package main

import (
	"math"

	"github.com/pthm-cable/bigfish/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Column name in the tuning log
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of difficulty parameters.
// Velocity bounds do not overlap, so any clamped vector keeps
// min_velocity below max_velocity.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "interval_ms", Path: "spawner.interval_ms", Min: 300, Max: 4000, Default: 1500},
			{Name: "min_velocity", Path: "spawner.min_velocity", Min: -500, Max: -150, Default: -250},
			{Name: "max_velocity", Path: "spawner.max_velocity", Min: -140, Max: -20, Default: -100},
			{Name: "scale_factor", Path: "spawner.scale_factor", Min: 0.5, Max: 0.99, Default: 0.9},
			{Name: "max_speed", Path: "player.max_speed", Min: 80, Max: 400, Default: 200},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Min(math.Max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg and refreshes its
// derived values. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	c := pv.Clamp(values)
	cfg.Spawner.IntervalMs = int(math.Round(c[0]))
	cfg.Spawner.MinVelocity = int(math.Round(c[1]))
	cfg.Spawner.MaxVelocity = int(math.Round(c[2]))
	cfg.Spawner.ScaleFactor = c[3]
	cfg.Player.MaxSpeed = c[4]
	return cfg.Refresh()
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Spawner.IntervalMs),
		float64(cfg.Spawner.MinVelocity),
		float64(cfg.Spawner.MaxVelocity),
		cfg.Spawner.ScaleFactor,
		cfg.Player.MaxSpeed,
	}
}
