package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1},
		{"p50 even", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.5, 5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9},
		{"p above 1 clamps", []float64{1, 2, 3}, 1.5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeScaleStats(t *testing.T) {
	values := []float64{0.4, 0.2, 0.3}
	mean, std, p10, p50, p90 := ComputeScaleStats(values)

	if math.Abs(mean-0.3) > 1e-9 {
		t.Errorf("mean = %v, want 0.3", mean)
	}
	// Sample std of {0.2, 0.3, 0.4} is 0.1
	if math.Abs(std-0.1) > 1e-9 {
		t.Errorf("std = %v, want 0.1", std)
	}
	if p10 != 0.2 || p50 != 0.3 || p90 != 0.4 {
		t.Errorf("percentiles = (%v, %v, %v), want (0.2, 0.3, 0.4)", p10, p50, p90)
	}
	// Input is left unsorted
	if values[0] != 0.4 {
		t.Error("ComputeScaleStats modified its input")
	}
}

func TestComputeScaleStats_Small(t *testing.T) {
	if m, s, _, _, _ := ComputeScaleStats(nil); m != 0 || s != 0 {
		t.Errorf("empty = (%v, %v), want zeros", m, s)
	}
	m, s, p10, p50, p90 := ComputeScaleStats([]float64{0.25})
	if m != 0.25 || s != 0 || p10 != 0.25 || p50 != 0.25 || p90 != 0.25 {
		t.Errorf("single = (%v, %v, %v, %v, %v)", m, s, p10, p50, p90)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1.0, 0.1) // 10 ticks per window

	if c.WindowDurationTicks() != 10 {
		t.Fatalf("WindowDurationTicks() = %d, want 10", c.WindowDurationTicks())
	}
	if c.ShouldFlush(9) {
		t.Error("ShouldFlush(9) = true before window elapsed")
	}

	c.Record(NewSpawnEvent(1, 1, 0.3))
	c.Record(NewSpawnEvent(2, 2, 0.4))
	c.Record(NewConsumeEvent(3, 1, 10, 0.3))
	c.Record(NewSweepEvent(4, 1))
	c.Record(Event{Type: EventInputRejected, Tick: 5})
	c.Record(Event{Type: EventSpawnRefused, Tick: 6})

	if !c.ShouldFlush(10) {
		t.Fatal("ShouldFlush(10) = false")
	}
	stats := c.Flush(10, Sample{Score: 10, PlayerScale: 0.55, ActiveCount: 0})

	if stats.Spawned != 2 || stats.Consumed != 1 || stats.Swept != 1 {
		t.Errorf("counters = (%d, %d, %d), want (2, 1, 1)", stats.Spawned, stats.Consumed, stats.Swept)
	}
	if stats.InputsRejected != 1 || stats.SpawnsRefused != 1 || stats.PointsScored != 10 {
		t.Errorf("rejections/points = (%d, %d, %d)", stats.InputsRejected, stats.SpawnsRefused, stats.PointsScored)
	}
	if math.Abs(stats.CatchRate-0.5) > 1e-9 {
		t.Errorf("catch rate = %v, want 0.5", stats.CatchRate)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}
	if stats.EatenScaleMean != 0.3 {
		t.Errorf("eaten scale mean = %v, want 0.3", stats.EatenScaleMean)
	}

	// Counters reset after flush
	next := c.Flush(20, Sample{})
	if next.Spawned != 0 || next.Consumed != 0 || next.WindowStartTick != 10 {
		t.Errorf("second window = %+v", next)
	}
}
