package systems

import "github.com/pthm-cable/bigfish/components"

// Sweeper retires obstacles that have left the field past the trailing edge.
type Sweeper struct {
	pool         *ObstaclePool
	trailingEdge float64
}

// NewSweeper creates a sweeper retiring obstacles with x < trailingEdge.
func NewSweeper(pool *ObstaclePool, trailingEdge float64) *Sweeper {
	return &Sweeper{pool: pool, trailingEdge: trailingEdge}
}

// Update retires off-field obstacles and returns how many were retired.
func (s *Sweeper) Update() int {
	return s.pool.RetireWhere(func(pos *components.Position) bool {
		return pos.X < s.trailingEdge
	})
}
