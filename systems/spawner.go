package systems

import (
	"errors"
	"fmt"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/config"
)

// ErrSpawnRange is returned when the player is too small for any obstacle
// to fit below it (player scale * factor <= minimum obstacle scale).
var ErrSpawnRange = errors.New("spawn scale range is empty")

// Spawner creates obstacles with randomized attributes at the leading edge.
type Spawner struct {
	cfg  config.SpawnerConfig
	rng  *Random
	pool *ObstaclePool
}

// NewSpawner creates a spawner inserting into pool.
func NewSpawner(cfg config.SpawnerConfig, rng *Random, pool *ObstaclePool) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, pool: pool}
}

// Roll draws the attributes of the next obstacle.
// Obstacle scale is drawn from [min_scale, playerScale*scale_factor) so every
// obstacle is strictly smaller than the player at the moment it spawns.
func (s *Spawner) Roll(playerScale float64) (ObstacleSpec, error) {
	maxScale := playerScale * s.cfg.ScaleFactor
	if !(maxScale > s.cfg.MinScale) {
		return ObstacleSpec{}, fmt.Errorf("%w: player scale %.3f allows at most %.3f, minimum is %.3f",
			ErrSpawnRange, playerScale, maxScale, s.cfg.MinScale)
	}

	return ObstacleSpec{
		X:         s.cfg.SpawnX,
		Y:         float64(s.rng.Between(s.cfg.MinY, s.cfg.MaxY)),
		Scale:     s.rng.FloatBetween(s.cfg.MinScale, maxScale),
		VelocityX: float64(s.rng.Between(s.cfg.MinVelocity, s.cfg.MaxVelocity)),
		BodySize:  s.cfg.BodySize,
	}, nil
}

// Spawn rolls one obstacle and inserts it into the pool.
func (s *Spawner) Spawn(playerScale float64, tick int32) (ecs.Entity, error) {
	spec, err := s.Roll(playerScale)
	if err != nil {
		return ecs.Entity{}, err
	}
	e, err := s.pool.Create(spec, tick)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawning obstacle: %w", err)
	}
	return e, nil
}

// Interval is a recurring timer driven by elapsed simulation time.
// The first firing happens one full period after creation or Reset.
type Interval struct {
	period  time.Duration
	elapsed time.Duration
}

// NewInterval creates a timer firing every period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Advance adds d to the timer and returns how many periods completed.
func (i *Interval) Advance(d time.Duration) int {
	if i.period <= 0 || d <= 0 {
		return 0
	}
	i.elapsed += d
	fired := int(i.elapsed / i.period)
	i.elapsed -= time.Duration(fired) * i.period
	return fired
}

// Reset restarts the timer from zero.
func (i *Interval) Reset() {
	i.elapsed = 0
}

// Remaining returns the time until the next firing.
func (i *Interval) Remaining() time.Duration {
	return i.period - i.elapsed
}
