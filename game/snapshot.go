package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

// EntityView is a read-only copy of an entity's drawable state.
type EntityView struct {
	X, Y         float64
	Heading      float64 // radians
	Scale        float64
	HalfW, HalfH float64 // collision box half extents
}

// Snapshot is an immutable copy of everything a front-end draws.
type Snapshot struct {
	Tick      int32
	FieldW    float64
	FieldH    float64
	Player    EntityView
	Target    Target
	Obstacles []EntityView
	Score     int
	ScoreText string
	Paused    bool
	Faults    int
}

// Snapshot copies the drawable state into dst, reusing its obstacle slice.
func (g *Game) Snapshot(dst *Snapshot) {
	pos, _, rot, scale, body, _ := g.playerMapper.Get(g.player)
	halfW, halfH := body.Extents(scale.Value)

	dst.Tick = g.tick
	dst.FieldW = g.cfg.Derived.FieldW
	dst.FieldH = g.cfg.Derived.FieldH
	dst.Player = EntityView{
		X: pos.X, Y: pos.Y,
		Heading: rot.Heading,
		Scale:   scale.Value,
		HalfW:   halfW, HalfH: halfH,
	}
	dst.Target = g.target
	dst.Score = g.score.Value()
	dst.ScoreText = g.score.Text()
	dst.Paused = g.paused
	dst.Faults = g.faults

	dst.Obstacles = dst.Obstacles[:0]
	g.pool.Each(func(_ ecs.Entity, pos *components.Position, scale *components.Scale, body *components.Body) {
		hw, hh := body.Extents(scale.Value)
		dst.Obstacles = append(dst.Obstacles, EntityView{
			X: pos.X, Y: pos.Y,
			Heading: math.Pi, // obstacles always swim left
			Scale:   scale.Value,
			HalfW:   hw, HalfH: hh,
		})
	})
}
