package game

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bigfish/systems"
	"github.com/pthm-cable/bigfish/telemetry"
)

// TickFault reports a panic recovered while running a tick. The rest of
// that tick is skipped; the simulation continues with the next one.
type TickFault struct {
	Tick  int32
	Value any
}

func (f *TickFault) Error() string {
	return fmt.Sprintf("tick %d: recovered panic: %v", f.Tick, f.Value)
}

// Unwrap returns the recovered value when it is an error.
func (f *TickFault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}

// Step advances the simulation by one fixed tick:
// input, spawn timer, steering, motion, collision, sweep, compaction.
// While paused only the input queue is drained.
func (g *Game) Step() (err error) {
	if g.paused {
		g.drainInput()
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			fault := &TickFault{Tick: g.tick, Value: r}
			g.faults++
			g.tick++
			slog.Error("tick fault", "tick", fault.Tick, "panic", fmt.Sprint(r))
			err = fault
		}
	}()

	dt := g.cfg.Physics.DT
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	if g.autopilot != nil {
		g.autopilot.Update(g)
	}
	g.drainInput()

	g.perf.StartPhase(telemetry.PhaseSpawn)
	if g.spawnTimer != nil {
		for n := g.spawnTimer.Advance(g.cfg.Derived.TickDuration); n > 0; n-- {
			g.Spawn()
		}
	}

	pos, vel, rot, scale, body, _ := g.playerMapper.Get(g.player)

	g.perf.StartPhase(telemetry.PhaseSteering)
	g.steering.Update(pos, vel, rot, r2.Vec{X: g.target.X, Y: g.target.Y}, dt)

	g.perf.StartPhase(telemetry.PhasePhysics)
	g.physics.Update(dt)
	halfW, halfH := body.Extents(scale.Value)
	g.physics.Clamp(pos, vel, halfW, halfH)

	g.perf.StartPhase(telemetry.PhaseCollision)
	// Every pair is judged against the box from the start of the phase
	g.collision.Update(systems.BoxOf(*pos, *body, scale.Value), g.consume)

	g.perf.StartPhase(telemetry.PhaseSweep)
	if n := g.sweeper.Update(); n > 0 {
		g.collector.Record(telemetry.NewSweepEvent(g.tick, n))
		slog.Debug("obstacles swept", "tick", g.tick, "count", n)
	}

	g.perf.StartPhase(telemetry.PhaseCompact)
	g.pool.Compact()

	g.tick++

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perf.EndTick()

	return nil
}
