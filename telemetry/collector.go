package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	spawned        int
	spawnsRefused  int
	consumed       int
	swept          int
	inputsRejected int
	pointsScored   int
	consumedScales []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record adds an event to the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventSpawn:
		c.spawned++
	case EventSpawnRefused:
		c.spawnsRefused++
	case EventConsume:
		c.consumed++
		c.pointsScored += ev.Points
		c.consumedScales = append(c.consumedScales, ev.Scale)
	case EventSweep:
		c.swept += ev.Points
	case EventInputRejected:
		c.inputsRejected++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Sample holds world state sampled at the end of a window.
type Sample struct {
	Score          int
	PlayerScale    float64
	ActiveCount    int
	ObstacleScales []float64 // scales of active obstacles
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, s Sample) WindowStats {
	obsMean, obsStd, obsP10, obsP50, obsP90 := ComputeScaleStats(s.ObstacleScales)
	eatenMean, _, _, _, _ := ComputeScaleStats(c.consumedScales)

	var catchRate float64
	if c.spawned > 0 {
		catchRate = float64(c.consumed) / float64(c.spawned)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Score:       s.Score,
		PlayerScale: s.PlayerScale,
		ActiveCount: s.ActiveCount,

		Spawned:        c.spawned,
		SpawnsRefused:  c.spawnsRefused,
		Consumed:       c.consumed,
		Swept:          c.swept,
		InputsRejected: c.inputsRejected,
		PointsScored:   c.pointsScored,
		CatchRate:      catchRate,

		ObstacleScaleMean: obsMean,
		ObstacleScaleStd:  obsStd,
		ObstacleScaleP10:  obsP10,
		ObstacleScaleP50:  obsP50,
		ObstacleScaleP90:  obsP90,
		EatenScaleMean:    eatenMean,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.spawned = 0
	c.spawnsRefused = 0
	c.consumed = 0
	c.swept = 0
	c.inputsRejected = 0
	c.pointsScored = 0
	c.consumedScales = c.consumedScales[:0]

	return stats
}

// Reset discards the current window and restarts counting at tick.
func (c *Collector) Reset(tick int32) {
	c.windowStartTick = tick
	c.spawned = 0
	c.spawnsRefused = 0
	c.consumed = 0
	c.swept = 0
	c.inputsRejected = 0
	c.pointsScored = 0
	c.consumedScales = c.consumedScales[:0]
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
