package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/telemetry"
)

// flushTelemetry closes the stats window when due and fans it out to the
// callback, the log, CSV output, and the bookmark detector.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleWorld())
	perfStats := g.perf.Stats()

	if g.opts.StatsCallback != nil {
		g.opts.StatsCallback(stats)
	}

	if g.opts.LogStats {
		stats.LogStats()
		g.logWorldState()
		g.logPerfStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.opts.LogStats {
			bm.LogBookmark()
		}
		if g.output != nil {
			if err := g.output.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// sampleWorld collects end-of-window state for the collector.
func (g *Game) sampleWorld() telemetry.Sample {
	scales := make([]float64, 0, g.pool.Active())
	g.pool.Each(func(_ ecs.Entity, _ *components.Position, scale *components.Scale, _ *components.Body) {
		scales = append(scales, scale.Value)
	})

	return telemetry.Sample{
		Score:          g.score.Value(),
		PlayerScale:    g.PlayerScale(),
		ActiveCount:    g.pool.Active(),
		ObstacleScales: scales,
	}
}
