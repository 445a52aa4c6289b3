package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSteering)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseSteering]; !ok {
		t.Error("expected steering phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseCollision]; !ok {
		t.Error("expected collision phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Overfill the window; old samples are overwritten
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePhysics)
		time.Sleep(50 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
	if stats.MinTickDuration > stats.MaxTickDuration {
		t.Errorf("min %v > max %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	// Sleep only overshoots, so FPS is bounded above
	if stats.FPS <= 0 || stats.FPS > 1000.0/15 {
		t.Errorf("FPS = %v, want (0, 66.7]", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 120 * time.Microsecond,
		PhasePct: map[string]float64{
			PhaseCollision: 40,
			PhaseSweep:     5,
		},
	}

	row := s.ToCSV(600)
	if row.WindowEnd != 600 || row.AvgTickUS != 120 {
		t.Errorf("row = %+v", row)
	}
	if row.CollisionPct != 40 || row.SweepPct != 5 || row.SpawnPct != 0 {
		t.Errorf("phase columns = (%v, %v, %v)", row.CollisionPct, row.SweepPct, row.SpawnPct)
	}
}
