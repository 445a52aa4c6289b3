package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/bigfish/telemetry"
)

// ErrNonFinite is returned by PushTarget for NaN or infinite coordinates.
var ErrNonFinite = errors.New("target coordinates must be finite")

// Target is the point the player steers toward, in field units.
type Target struct {
	X, Y float64
}

// PushTarget queues a new steering target. It is safe to call from any
// goroutine. Finite points outside the field are clamped into it. The
// newest target always wins: when the queue is full the oldest pending
// target is dropped to make room.
func (g *Game) PushTarget(x, y float64) error {
	if !finite(x) || !finite(y) {
		g.rejected.Add(1)
		slog.Debug("target rejected", "x", x, "y", y)
		return fmt.Errorf("%w: (%v, %v)", ErrNonFinite, x, y)
	}

	t := Target{
		X: clamp(x, 0, g.cfg.Derived.FieldW),
		Y: clamp(y, 0, g.cfg.Derived.FieldH),
	}
	for {
		select {
		case g.inbox <- t:
			return nil
		default:
		}
		// Full: drop the oldest and retry
		select {
		case <-g.inbox:
		default:
		}
	}
}

// drainInput applies every queued target in order, so the last one wins.
func (g *Game) drainInput() {
drain:
	for {
		select {
		case t := <-g.inbox:
			g.target = t
		default:
			break drain
		}
	}

	for n := g.rejected.Swap(0); n > 0; n-- {
		g.collector.Record(telemetry.Event{Type: telemetry.EventInputRejected, Tick: g.tick})
	}
}

// discardInput drops all queued targets and pending rejections.
func (g *Game) discardInput() {
	g.rejected.Store(0)
	for {
		select {
		case <-g.inbox:
		default:
			return
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
