package game

import (
	"context"
	"errors"
	"time"
)

// ErrRunnerStopped is returned by Do after Run has returned.
var ErrRunnerStopped = errors.New("runner stopped")

// Runner owns a Game on one goroutine and drives it in real time. Ticks
// and spawns run on separate wall-clock tickers; other goroutines reach
// the game through PushTarget or Do.
type Runner struct {
	game       *Game
	commands   chan func(*Game)
	done       chan struct{}
	tickEvery  time.Duration
	spawnEvery time.Duration

	// MaxTicks stops Run once the game reaches this tick (0 = unlimited).
	MaxTicks int32
	// OnTick, if set, runs on the owner goroutine after every tick.
	OnTick func(g *Game)
}

// NewRunner takes ownership of g. Spawns switch from simulated time to
// the runner's wall clock.
func NewRunner(g *Game) *Runner {
	g.useWallClockSpawns()
	return &Runner{
		game:       g,
		commands:   make(chan func(*Game), 16),
		done:       make(chan struct{}),
		tickEvery:  g.cfg.Derived.TickDuration,
		spawnEvery: g.cfg.Derived.SpawnInterval,
	}
}

// Do runs fn on the owner goroutine and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func(*Game)) error {
	finished := make(chan struct{})
	cmd := func(g *Game) {
		defer close(finished)
		fn(g)
	}

	select {
	case r.commands <- cmd:
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the game until ctx is cancelled or MaxTicks is reached.
// It returns nil when MaxTicks ends the run and ctx.Err() otherwise.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	ticker := time.NewTicker(r.tickEvery)
	defer ticker.Stop()
	// A nil channel never fires, which disables spawning
	var spawnC <-chan time.Time
	if r.spawnEvery > 0 {
		spawns := time.NewTicker(r.spawnEvery)
		defer spawns.Stop()
		spawnC = spawns.C
	}

	g := r.game
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.commands:
			cmd(g)
		case <-spawnC:
			if !g.Paused() {
				g.Spawn()
			}
		case <-ticker.C:
			// Faults are logged by Step; the run continues
			_ = g.Step()
			if r.OnTick != nil {
				r.OnTick(g)
			}
			if r.MaxTicks > 0 && g.Tick() >= r.MaxTicks {
				return nil
			}
		}
	}
}
