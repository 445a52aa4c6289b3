package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bigfish/components"
)

// Autopilot is a scripted input source for headless and demo runs. Every
// few ticks it aims the player at the nearest active obstacle, going
// through PushTarget like any other input.
type Autopilot struct {
	every int32
}

// NewAutopilot creates an autopilot that retargets every retargetTicks ticks.
func NewAutopilot(retargetTicks int) *Autopilot {
	if retargetTicks < 1 {
		retargetTicks = 1
	}
	return &Autopilot{every: int32(retargetTicks)}
}

// Update pushes a new target when a retarget tick is due.
func (a *Autopilot) Update(g *Game) {
	if g.tick%a.every != 0 {
		return
	}
	if t, ok := a.choose(g); ok {
		// Obstacle positions are always finite
		_ = g.PushTarget(t.X, t.Y)
	}
}

// choose returns the nearest active obstacle still inside the field.
func (a *Autopilot) choose(g *Game) (r2.Vec, bool) {
	px, py := g.PlayerPosition()
	player := r2.Vec{X: px, Y: py}

	best := math.Inf(1)
	var target r2.Vec
	g.pool.Each(func(_ ecs.Entity, pos *components.Position, _ *components.Scale, _ *components.Body) {
		if pos.X > g.cfg.Derived.FieldW {
			return
		}
		p := r2.Vec{X: pos.X, Y: pos.Y}
		if d := r2.Norm(r2.Sub(p, player)); d < best {
			best = d
			target = p
		}
	})
	return target, !math.IsInf(best, 1)
}
