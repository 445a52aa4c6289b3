package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bigfish/components"
)

// AABB is an axis-aligned box given by its centre and half extents.
type AABB struct {
	Center       r2.Vec
	HalfW, HalfH float64
}

// BoxOf returns the collision box of a body at pos with the given scale.
func BoxOf(pos components.Position, body components.Body, scale float64) AABB {
	hw, hh := body.Extents(scale)
	return AABB{Center: r2.Vec{X: pos.X, Y: pos.Y}, HalfW: hw, HalfH: hh}
}

// Min returns the top-left corner.
func (a AABB) Min() r2.Vec {
	return r2.Vec{X: a.Center.X - a.HalfW, Y: a.Center.Y - a.HalfH}
}

// Max returns the bottom-right corner.
func (a AABB) Max() r2.Vec {
	return r2.Vec{X: a.Center.X + a.HalfW, Y: a.Center.Y + a.HalfH}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (a AABB) Overlaps(b AABB) bool {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	return amin.X < bmax.X && amax.X > bmin.X && amin.Y < bmax.Y && amax.Y > bmin.Y
}

// OverlapFunc is invoked once per overlapping (player, obstacle) pair.
type OverlapFunc func(obstacle ecs.Entity)

// CollisionSystem finds obstacles overlapping the player's box.
type CollisionSystem struct {
	pool       *ObstaclePool
	grid       *SpatialGrid
	margin     float64 // largest obstacle half extent, pads broad-phase queries
	candidates []ecs.Entity
	hits       []ecs.Entity
}

// NewCollisionSystem creates a collision system over the pool.
// cellSize is the broad-phase grid cell size; maxObstacleHalf pads queries
// so obstacles bucketed in neighbouring cells are still considered.
func NewCollisionSystem(pool *ObstaclePool, bounds Bounds, cellSize, maxObstacleHalf float64) *CollisionSystem {
	return &CollisionSystem{
		pool:   pool,
		grid:   NewSpatialGrid(bounds.Width, bounds.Height, cellSize),
		margin: maxObstacleHalf,
	}
}

// Update rebuilds the broad phase and invokes onOverlap for every active
// obstacle whose box overlaps player. Each obstacle is reported at most once.
// onOverlap may retire obstacles; obstacles retired earlier in the same pass
// are skipped. Returns the number of callbacks made.
func (s *CollisionSystem) Update(player AABB, onOverlap OverlapFunc) int {
	s.grid.Clear()
	s.pool.Each(func(e ecs.Entity, pos *components.Position, _ *components.Scale, _ *components.Body) {
		s.grid.Insert(e, pos.X, pos.Y)
	})

	lo, hi := player.Min(), player.Max()
	s.candidates = s.grid.QueryRectInto(s.candidates[:0],
		lo.X-s.margin, lo.Y-s.margin, hi.X+s.margin, hi.Y+s.margin)

	// Narrow phase first, callbacks second, so every hit is judged
	// against the same player box
	s.hits = s.hits[:0]
	for _, e := range s.candidates {
		if player.Overlaps(s.pool.Box(e)) {
			s.hits = append(s.hits, e)
		}
	}

	n := 0
	for _, e := range s.hits {
		if !s.pool.IsActive(e) {
			continue
		}
		onOverlap(e)
		n++
	}
	return n
}
