// Package game owns the simulation state and advances it one tick at a time.
package game

import (
	"fmt"
	"sync/atomic"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/systems"
	"github.com/pthm-cable/bigfish/telemetry"
)

// GridCellSize is the broad-phase grid cell size in field units.
const GridCellSize = 64.0

// MaxSpeed bounds the steps run per Update.
const MaxSpeed = 16

// Options configures a Game beyond the loaded config.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // empty disables CSV output
	StepsPerUpdate int
	Autopilot      bool

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state. It is owned by a single
// goroutine; other goroutines may only call PushTarget.
type Game struct {
	cfg  *config.Config
	opts Options

	world *ecs.World
	rng   *systems.Random

	playerMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Scale,
		components.Body,
		components.Player,
	]
	player ecs.Entity

	// Systems
	pool       *systems.ObstaclePool
	spawner    *systems.Spawner
	spawnTimer *systems.Interval // nil when spawns are driven by a wall clock
	steering   *systems.SteeringSystem
	physics    *systems.PhysicsSystem
	collision  *systems.CollisionSystem
	sweeper    *systems.Sweeper
	registry   *systems.SystemRegistry

	// Input
	inbox     chan Target
	target    Target
	rejected  atomic.Int64
	autopilot *Autopilot

	// State
	score          Scoreboard
	tick           int32
	paused         bool
	stepsPerUpdate int
	faults         int

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	bookmarks *telemetry.BookmarkDetector
	output    *telemetry.OutputManager
}

// NewGame creates a game from cfg. The returned game must be closed to
// flush telemetry output.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	steps := min(max(opts.StepsPerUpdate, 1), MaxSpeed)

	g := &Game{
		cfg:            cfg,
		opts:           opts,
		rng:            systems.NewRandom(opts.Seed),
		steering:       systems.NewSteeringSystem(cfg.Player.MaxSpeed, cfg.Player.StopEpsilon),
		registry:       systems.NewSystemRegistry(),
		spawnTimer:     systems.NewInterval(cfg.Derived.SpawnInterval),
		inbox:          make(chan Target, cfg.Input.QueueSize),
		score:          NewScoreboard(cfg.Scoring.Label),
		stepsPerUpdate: steps,
		collector:      telemetry.NewCollector(statsWindow, cfg.Physics.DT),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarks:      telemetry.NewBookmarkDetector(10),
	}
	if opts.Autopilot {
		g.autopilot = NewAutopilot(cfg.Autopilot.RetargetTicks)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	g.output = output

	g.buildWorld()
	return g, nil
}

// buildWorld creates a fresh ECS world holding only the player.
func (g *Game) buildWorld() {
	cfg := g.cfg

	g.world = ecs.NewWorld()
	g.playerMapper = ecs.NewMap6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Scale,
		components.Body,
		components.Player,
	](g.world)

	bounds := systems.Bounds{Width: cfg.Derived.FieldW, Height: cfg.Derived.FieldH}
	g.pool = systems.NewObstaclePool(g.world, cfg.Spawner.MaxActive)
	g.spawner = systems.NewSpawner(cfg.Spawner, g.rng, g.pool)
	g.physics = systems.NewPhysicsSystem(g.world, bounds)
	g.collision = systems.NewCollisionSystem(g.pool, bounds, GridCellSize, cfg.Spawner.BodySize/2)
	g.sweeper = systems.NewSweeper(g.pool, cfg.Sweeper.TrailingEdge)

	g.player = g.spawnPlayer()
	g.target = Target{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	if g.spawnTimer != nil {
		g.spawnTimer.Reset()
	}
}

// Reset restarts the round with the same config: a new world, zero score,
// and the player back at its start position. The tick counter and the
// random stream keep running.
func (g *Game) Reset() {
	g.discardInput()
	g.score.Reset()
	g.buildWorld()
	g.paused = false
	logReset(g.tick)
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	if err := g.output.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// Update runs the configured number of steps for one front-end frame.
func (g *Game) Update() error {
	var last error
	for i := 0; i < g.stepsPerUpdate; i++ {
		if err := g.Step(); err != nil {
			last = err
		}
	}
	return last
}

// Speed returns the number of steps run per Update.
func (g *Game) Speed() int { return g.stepsPerUpdate }

// SetSpeed sets the steps per Update, clamped to [1, MaxSpeed].
func (g *Game) SetSpeed(steps int) {
	g.stepsPerUpdate = min(max(steps, 1), MaxSpeed)
}

// useWallClockSpawns hands spawn timing to an external clock.
func (g *Game) useWallClockSpawns() {
	g.spawnTimer = nil
}

// RecordFrame records render frame timing for perf stats.
func (g *Game) RecordFrame() {
	g.perf.RecordFrame()
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 { return g.tick }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Value() }

// ScoreText returns the HUD projection of the score.
func (g *Game) ScoreText() string { return g.score.Text() }

// Paused reports whether ticks are currently skipped.
func (g *Game) Paused() bool { return g.paused }

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(p bool) { g.paused = p }

// TogglePause flips the paused state.
func (g *Game) TogglePause() { g.paused = !g.paused }

// Faults returns how many ticks ended in a recovered panic.
func (g *Game) Faults() int { return g.faults }

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Registry returns the system registry used for HUD labels.
func (g *Game) Registry() *systems.SystemRegistry { return g.registry }

// PerfStats returns aggregated tick timings.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perf.Stats() }

// PlayerScale returns the player's current scale.
func (g *Game) PlayerScale() float64 {
	_, _, _, scale, _, _ := g.playerMapper.Get(g.player)
	return scale.Value
}

// PlayerPosition returns the player's current centre.
func (g *Game) PlayerPosition() (x, y float64) {
	pos, _, _, _, _, _ := g.playerMapper.Get(g.player)
	return pos.X, pos.Y
}

// ActiveObstacles returns the number of active obstacles.
func (g *Game) ActiveObstacles() int { return g.pool.Active() }

// CurrentTarget returns the target the player is steering toward.
func (g *Game) CurrentTarget() Target { return g.target }
