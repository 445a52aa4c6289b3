package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State at window end
	Score       int     `csv:"score"`
	PlayerScale float64 `csv:"player_scale"`
	ActiveCount int     `csv:"active"`

	// Events during window
	Spawned        int     `csv:"spawned"`
	SpawnsRefused  int     `csv:"spawns_refused"`
	Consumed       int     `csv:"consumed"`
	Swept          int     `csv:"swept"`
	InputsRejected int     `csv:"inputs_rejected"`
	PointsScored   int     `csv:"points"`
	CatchRate      float64 `csv:"catch_rate"`

	// Obstacle scale distribution (sampled at window end)
	ObstacleScaleMean float64 `csv:"obstacle_scale_mean"`
	ObstacleScaleStd  float64 `csv:"obstacle_scale_std"`
	ObstacleScaleP10  float64 `csv:"obstacle_scale_p10"`
	ObstacleScaleP50  float64 `csv:"obstacle_scale_p50"`
	ObstacleScaleP90  float64 `csv:"obstacle_scale_p90"`

	// Mean scale of obstacles eaten during the window
	EatenScaleMean float64 `csv:"eaten_scale_mean"`
}

// Percentile returns the empirical p-quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeScaleStats calculates mean, std, and percentiles of scale values.
// Std is the sample standard deviation and is 0 for fewer than two values.
func ComputeScaleStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}
	if n == 1 {
		return values[0], 0, values[0], values[0], values[0]
	}

	mean, std = stat.MeanStdDev(values, nil)

	// Sort a copy for percentiles
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("score", s.Score),
		slog.Float64("player_scale", s.PlayerScale),
		slog.Int("active", s.ActiveCount),
		slog.Int("spawned", s.Spawned),
		slog.Int("spawns_refused", s.SpawnsRefused),
		slog.Int("consumed", s.Consumed),
		slog.Int("swept", s.Swept),
		slog.Int("inputs_rejected", s.InputsRejected),
		slog.Float64("catch_rate", s.CatchRate),
		slog.Float64("obstacle_scale_mean", s.ObstacleScaleMean),
		slog.Float64("obstacle_scale_p50", s.ObstacleScaleP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"score", s.Score,
		"player_scale", s.PlayerScale,
		"active", s.ActiveCount,
		"spawned", s.Spawned,
		"spawns_refused", s.SpawnsRefused,
		"consumed", s.Consumed,
		"swept", s.Swept,
		"inputs_rejected", s.InputsRejected,
		"points", s.PointsScored,
		"catch_rate", s.CatchRate,
		"obstacle_scale_mean", s.ObstacleScaleMean,
		"obstacle_scale_std", s.ObstacleScaleStd,
		"obstacle_scale_p10", s.ObstacleScaleP10,
		"obstacle_scale_p50", s.ObstacleScaleP50,
		"obstacle_scale_p90", s.ObstacleScaleP90,
		"eaten_scale_mean", s.EatenScaleMean,
	)
}
