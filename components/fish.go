// Package components defines ECS components for the simulation.
package components

// Player tags the single controlled entity.
type Player struct{}

// Obstacle holds per-obstacle bookkeeping.
// Active is cleared on retirement; the entity itself is removed
// by the pool's compaction pass once no query is running.
type Obstacle struct {
	ID        uint32
	Active    bool
	SpawnTick int32
}
