package game

import (
	"log/slog"
	"math"
	"time"
)

// logPerfStats logs per-phase tick timings.
func (g *Game) logPerfStats() {
	stats := g.perf.Stats()

	attrs := []any{
		"tick", g.tick,
		"steps_per_update", g.stepsPerUpdate,
		"avg_tick", stats.AvgTickDuration.Round(time.Microsecond).String(),
	}
	for _, id := range g.registry.IDs() {
		if pct, ok := stats.PhasePct[id]; ok {
			attrs = append(attrs, g.registry.GetName(id), math.Round(pct*10)/10)
		}
	}
	slog.Info("perf", attrs...)
}

// logWorldState logs a summary of the current world.
func (g *Game) logWorldState() {
	px, py := g.PlayerPosition()
	slog.Info("world",
		"tick", g.tick,
		"score", g.score.Value(),
		"player_scale", g.PlayerScale(),
		"player_x", px,
		"player_y", py,
		"target_x", g.target.X,
		"target_y", g.target.Y,
		"active", g.pool.Active(),
		"pending", g.pool.Pending(),
		"faults", g.faults,
	)
}

func logReset(tick int32) {
	slog.Info("round reset", "tick", tick)
}
