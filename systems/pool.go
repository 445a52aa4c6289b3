package systems

import (
	"errors"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

// ErrPoolFull is returned when creating an obstacle would exceed the pool capacity.
var ErrPoolFull = errors.New("obstacle pool at capacity")

// ObstacleSpec describes an obstacle to create.
type ObstacleSpec struct {
	X, Y      float64
	Scale     float64
	VelocityX float64
	BodySize  float64
}

// ObstaclePool owns every obstacle entity in the world.
//
// Retirement is two-phase: Retire clears the Active flag immediately so later
// checks in the same tick skip the obstacle, and Compact removes retired
// entities from the world once no query is open.
type ObstaclePool struct {
	world  *ecs.World
	mapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Scale,
		components.Body,
		components.Obstacle,
	]
	filter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Scale,
		components.Body,
		components.Obstacle,
	]
	obsMap *ecs.Map[components.Obstacle]

	capacity int
	active   int
	nextID   uint32
	retired  []ecs.Entity
	scratch  []ecs.Entity
}

// NewObstaclePool creates a pool holding at most capacity active obstacles.
func NewObstaclePool(w *ecs.World, capacity int) *ObstaclePool {
	return &ObstaclePool{
		world: w,
		mapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Scale,
			components.Body,
			components.Obstacle,
		](w),
		filter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Scale,
			components.Body,
			components.Obstacle,
		](w),
		obsMap:   ecs.NewMap[components.Obstacle](w),
		capacity: capacity,
	}
}

// Create adds a new active obstacle. Must not be called while a query is open.
func (p *ObstaclePool) Create(spec ObstacleSpec, tick int32) (ecs.Entity, error) {
	if p.active >= p.capacity {
		return ecs.Entity{}, ErrPoolFull
	}

	p.nextID++
	pos := components.Position{X: spec.X, Y: spec.Y}
	vel := components.Velocity{X: spec.VelocityX}
	scale := components.Scale{Value: spec.Scale}
	body := components.Body{Width: spec.BodySize, Height: spec.BodySize}
	obs := components.Obstacle{ID: p.nextID, Active: true, SpawnTick: tick}

	e := p.mapper.NewEntity(&pos, &vel, &scale, &body, &obs)
	p.active++
	return e, nil
}

// Retire marks an obstacle inactive. Retiring an entity that is already
// retired, removed, or not an obstacle is a no-op and returns false.
func (p *ObstaclePool) Retire(e ecs.Entity) bool {
	if !p.world.Alive(e) || !p.obsMap.Has(e) {
		return false
	}
	obs := p.obsMap.Get(e)
	if !obs.Active {
		return false
	}
	obs.Active = false
	p.active--
	p.retired = append(p.retired, e)
	return true
}

// RetireWhere retires every active obstacle whose position satisfies pred
// and returns how many were retired.
func (p *ObstaclePool) RetireWhere(pred func(pos *components.Position) bool) int {
	// Collect first; the query must finish before the pool is touched again
	p.scratch = p.scratch[:0]
	query := p.filter.Query()
	for query.Next() {
		pos, _, _, _, obs := query.Get()
		if obs.Active && pred(pos) {
			p.scratch = append(p.scratch, query.Entity())
		}
	}

	n := 0
	for _, e := range p.scratch {
		if p.Retire(e) {
			n++
		}
	}
	return n
}

// Each calls fn for every active obstacle. fn must not create or remove entities.
func (p *ObstaclePool) Each(fn func(e ecs.Entity, pos *components.Position, scale *components.Scale, body *components.Body)) {
	query := p.filter.Query()
	for query.Next() {
		pos, _, scale, body, obs := query.Get()
		if !obs.Active {
			continue
		}
		fn(query.Entity(), pos, scale, body)
	}
}

// Box returns the collision box of an obstacle.
func (p *ObstaclePool) Box(e ecs.Entity) AABB {
	pos, _, scale, body, _ := p.mapper.Get(e)
	return BoxOf(*pos, *body, scale.Value)
}

// Info returns the obstacle record and scale of e.
func (p *ObstaclePool) Info(e ecs.Entity) (components.Obstacle, float64) {
	_, _, scale, _, obs := p.mapper.Get(e)
	return *obs, scale.Value
}

// IsActive reports whether e is a live, non-retired obstacle.
func (p *ObstaclePool) IsActive(e ecs.Entity) bool {
	if !p.world.Alive(e) || !p.obsMap.Has(e) {
		return false
	}
	return p.obsMap.Get(e).Active
}

// Compact removes retired obstacles from the world and returns how many were removed.
// Must not be called while a query is open.
func (p *ObstaclePool) Compact() int {
	n := 0
	for _, e := range p.retired {
		if p.world.Alive(e) {
			p.world.RemoveEntity(e)
			n++
		}
	}
	p.retired = p.retired[:0]
	return n
}

// Active returns the number of active obstacles.
func (p *ObstaclePool) Active() int {
	return p.active
}

// Pending returns the number of retired obstacles awaiting compaction.
func (p *ObstaclePool) Pending() int {
	return len(p.retired)
}

// Capacity returns the maximum number of active obstacles.
func (p *ObstaclePool) Capacity() int {
	return p.capacity
}
