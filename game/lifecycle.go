package game

import (
	"errors"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
	"github.com/pthm-cable/bigfish/systems"
	"github.com/pthm-cable/bigfish/telemetry"
)

// spawnPlayer creates the controlled entity at its configured start.
func (g *Game) spawnPlayer() ecs.Entity {
	cfg := g.cfg.Player

	pos := components.Position{X: cfg.StartX, Y: cfg.StartY}
	vel := components.Velocity{}
	rot := components.Rotation{}
	scale := components.Scale{Value: cfg.Scale}
	body := components.Body{Width: cfg.BodyWidth, Height: cfg.BodyHeight, Scaled: true}
	tag := components.Player{}

	return g.playerMapper.NewEntity(&pos, &vel, &rot, &scale, &body, &tag)
}

// Spawn creates one obstacle at the leading edge, sized below the player.
// Refusals are logged and counted; the error is returned for callers that
// care (tests, the runner).
func (g *Game) Spawn() (ecs.Entity, error) {
	e, err := g.spawner.Spawn(g.PlayerScale(), g.tick)
	switch {
	case errors.Is(err, systems.ErrPoolFull):
		g.collector.Record(telemetry.Event{Type: telemetry.EventSpawnRefused, Tick: g.tick})
		slog.Warn("spawn refused", "tick", g.tick, "active", g.pool.Active(), "capacity", g.pool.Capacity())
		return e, err
	case errors.Is(err, systems.ErrSpawnRange):
		slog.Warn("spawn skipped", "tick", g.tick, "error", err)
		return e, err
	case err != nil:
		return e, err
	}

	obs, scale := g.pool.Info(e)
	g.collector.Record(telemetry.NewSpawnEvent(g.tick, obs.ID, scale))
	slog.Debug("obstacle spawned", "tick", g.tick, "id", obs.ID, "scale", scale)
	return e, nil
}

// consume applies the consumption transition for one overlapping obstacle:
// retire it, add points, and grow the player. Obstacles already retired
// this tick are ignored.
func (g *Game) consume(e ecs.Entity) {
	obs, obsScale := g.pool.Info(e)
	if !g.pool.Retire(e) {
		return
	}

	_, _, _, scale, _, _ := g.playerMapper.Get(g.player)
	scale.Value += g.cfg.Scoring.GrowthPerCatch
	g.score.Add(g.cfg.Scoring.PointsPerCatch)

	ev := telemetry.NewConsumeEvent(g.tick, obs.ID, g.cfg.Scoring.PointsPerCatch, obsScale)
	g.collector.Record(ev)
	if err := g.output.WriteCatch(telemetry.NewCatch(ev, g.score.Value(), scale.Value)); err != nil {
		slog.Error("failed to write catch", "error", err)
	}
	slog.Debug("obstacle consumed",
		"tick", g.tick,
		"id", obs.ID,
		"score", g.score.Value(),
		"player_scale", scale.Value,
	)
}
