// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Input     InputConfig     `yaml:"input"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the window front-end.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FieldConfig holds the playfield dimensions in field units.
// Zero means "same as the screen".
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// PlayerConfig describes the controlled entity.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Scale       float64 `yaml:"scale"`
	BodyWidth   float64 `yaml:"body_width"`  // footprint at scale 1
	BodyHeight  float64 `yaml:"body_height"` // footprint at scale 1
	MaxSpeed    float64 `yaml:"max_speed"`   // units per second
	StopEpsilon float64 `yaml:"stop_epsilon"`
}

// SpawnerConfig holds obstacle spawning parameters.
type SpawnerConfig struct {
	IntervalMs  int     `yaml:"interval_ms"`
	SpawnX      float64 `yaml:"spawn_x"`
	MinY        int     `yaml:"min_y"`
	MaxY        int     `yaml:"max_y"`
	MinScale    float64 `yaml:"min_scale"`
	ScaleFactor float64 `yaml:"scale_factor"` // upper scale bound = player scale * this
	MinVelocity int     `yaml:"min_velocity"`
	MaxVelocity int     `yaml:"max_velocity"`
	BodySize    float64 `yaml:"body_size"` // square footprint, not scaled
	MaxActive   int     `yaml:"max_active"`
}

// SweeperConfig holds the boundary sweep threshold.
type SweeperConfig struct {
	TrailingEdge float64 `yaml:"trailing_edge"` // obstacles with x below this are retired
}

// ScoringConfig holds consumption rewards.
type ScoringConfig struct {
	PointsPerCatch int     `yaml:"points_per_catch"`
	GrowthPerCatch float64 `yaml:"growth_per_catch"`
	Label          string  `yaml:"label"`
}

// InputConfig holds input queue parameters.
type InputConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// AutopilotConfig holds scripted-input parameters.
type AutopilotConfig struct {
	RetargetTicks int `yaml:"retarget_ticks"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpawnInterval time.Duration
	TickDuration  time.Duration
	FieldW        float64
	FieldH        float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults. Panics if they fail to parse,
// which only happens when defaults.yaml itself is broken.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every inconsistent setting, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.DT <= 0 {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT))
	}
	if c.Player.Scale <= 0 {
		errs = append(errs, fmt.Errorf("player.scale must be positive, got %v", c.Player.Scale))
	}
	if c.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.max_speed must be positive, got %v", c.Player.MaxSpeed))
	}
	if c.Player.StopEpsilon < 0 {
		errs = append(errs, fmt.Errorf("player.stop_epsilon must not be negative, got %v", c.Player.StopEpsilon))
	}
	if c.Player.BodyWidth <= 0 || c.Player.BodyHeight <= 0 {
		errs = append(errs, errors.New("player body dimensions must be positive"))
	}
	if c.Spawner.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawner.interval_ms must be positive, got %d", c.Spawner.IntervalMs))
	}
	if c.Spawner.MinY > c.Spawner.MaxY {
		errs = append(errs, fmt.Errorf("spawner.min_y (%d) exceeds max_y (%d)", c.Spawner.MinY, c.Spawner.MaxY))
	}
	if c.Spawner.MinVelocity > c.Spawner.MaxVelocity {
		errs = append(errs, fmt.Errorf("spawner.min_velocity (%d) exceeds max_velocity (%d)", c.Spawner.MinVelocity, c.Spawner.MaxVelocity))
	}
	if c.Spawner.MaxVelocity >= 0 {
		errs = append(errs, fmt.Errorf("spawner.max_velocity must be negative, got %d", c.Spawner.MaxVelocity))
	}
	if c.Spawner.MinScale <= 0 {
		errs = append(errs, fmt.Errorf("spawner.min_scale must be positive, got %v", c.Spawner.MinScale))
	}
	if c.Spawner.BodySize <= 0 {
		errs = append(errs, fmt.Errorf("spawner.body_size must be positive, got %v", c.Spawner.BodySize))
	}
	if c.Spawner.MaxActive <= 0 {
		errs = append(errs, fmt.Errorf("spawner.max_active must be positive, got %d", c.Spawner.MaxActive))
	}
	if c.Scoring.PointsPerCatch < 0 || c.Scoring.GrowthPerCatch < 0 {
		errs = append(errs, errors.New("scoring rewards must not be negative"))
	}
	return errors.Join(errs...)
}

// Refresh validates c and recomputes its derived values. Call it after
// changing fields of a loaded config.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.computeDerived()
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SpawnInterval = time.Duration(c.Spawner.IntervalMs) * time.Millisecond
	c.Derived.TickDuration = time.Duration(c.Physics.DT * float64(time.Second))

	// Field dimensions default to screen size if not specified
	c.Derived.FieldW = c.Field.Width
	if c.Derived.FieldW == 0 {
		c.Derived.FieldW = float64(c.Screen.Width)
	}
	c.Derived.FieldH = c.Field.Height
	if c.Derived.FieldH == 0 {
		c.Derived.FieldH = float64(c.Screen.Height)
	}

	if c.Input.QueueSize <= 0 {
		c.Input.QueueSize = 64
	}
	if c.Autopilot.RetargetTicks <= 0 {
		c.Autopilot.RetargetTicks = 1
	}
	if c.Scoring.Label == "" {
		c.Scoring.Label = "Score"
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
