// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

// PhysicsSystem integrates entity positions from their velocities.
type PhysicsSystem struct {
	filter ecs.Filter2[components.Position, components.Velocity]
	bounds Bounds
}

// Bounds represents the playfield extent, anchored at the origin.
type Bounds struct {
	Width, Height float64
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter2[components.Position, components.Velocity](w),
		bounds: bounds,
	}
}

// Bounds returns the playfield bounds.
func (s *PhysicsSystem) Bounds() Bounds {
	return s.bounds
}

// Update advances every moving entity by vel*dt.
func (s *PhysicsSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}
}

// Clamp keeps a footprint with the given half extents inside the bounds.
// Velocity along a blocked axis is zeroed (no bounce).
// Returns true if the position was adjusted.
func (s *PhysicsSystem) Clamp(pos *components.Position, vel *components.Velocity, halfW, halfH float64) bool {
	x, blockedX := clampAxis(pos.X, halfW, s.bounds.Width)
	y, blockedY := clampAxis(pos.Y, halfH, s.bounds.Height)
	pos.X, pos.Y = x, y

	if blockedX {
		vel.X = 0
	}
	if blockedY {
		vel.Y = 0
	}
	return blockedX || blockedY
}

// clampAxis clamps a centre coordinate so [v-half, v+half] stays within [0, size].
// A footprint wider than the field is centred.
func clampAxis(v, half, size float64) (float64, bool) {
	if 2*half >= size {
		return size / 2, v != size/2
	}
	if v < half {
		return half, true
	}
	if v > size-half {
		return size - half, true
	}
	return v, false
}
