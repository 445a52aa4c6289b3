package game

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/telemetry"
)

func TestPushTarget_LastWriteWins(t *testing.T) {
	g := newTestGame(t, nil, Options{})

	for _, p := range []Target{{200, 100}, {300, 400}, {500, 250}} {
		if err := g.PushTarget(p.X, p.Y); err != nil {
			t.Fatal(err)
		}
	}
	stepN(t, g, 1)

	if g.CurrentTarget() != (Target{500, 250}) {
		t.Errorf("target = %+v, want last pushed (500, 250)", g.CurrentTarget())
	}
}

func TestPushTarget_Clamps(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Target
	}{
		{"inside", 320, 240, Target{320, 240}},
		{"left and below", -100, 5000, Target{0, 600}},
		{"right and above", 9000, -1, Target{800, 0}},
		{"max finite", math.MaxFloat64, 10, Target{800, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil, Options{})
			if err := g.PushTarget(tt.x, tt.y); err != nil {
				t.Fatalf("PushTarget: %v", err)
			}
			g.drainInput()
			if g.CurrentTarget() != tt.want {
				t.Errorf("target = %+v, want %+v", g.CurrentTarget(), tt.want)
			}
		})
	}
}

func TestPushTarget_RejectsNonFinite(t *testing.T) {
	cfg := config.Default()
	var rejected int
	g := newTestGame(t, cfg, Options{
		StatsWindowSec: cfg.Physics.DT,
		StatsCallback:  func(s telemetry.WindowStats) { rejected += s.InputsRejected },
	})

	bad := []Target{
		{math.NaN(), 100},
		{100, math.NaN()},
		{math.Inf(1), 100},
		{100, math.Inf(-1)},
	}
	for _, p := range bad {
		err := g.PushTarget(p.X, p.Y)
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("PushTarget(%v, %v) error = %v, want ErrNonFinite", p.X, p.Y, err)
		}
	}

	stepN(t, g, 1)
	if g.CurrentTarget() != (Target{100, 300}) {
		t.Errorf("target changed to %+v by rejected input", g.CurrentTarget())
	}
	if x, y := g.PlayerPosition(); math.IsNaN(x) || math.IsNaN(y) {
		t.Error("player position became NaN")
	}
	if rejected != len(bad) {
		t.Errorf("telemetry counted %d rejections, want %d", rejected, len(bad))
	}
}

func TestReset_DropsPendingRejections(t *testing.T) {
	tests := []struct {
		name    string
		pending int
	}{
		{"none", 0},
		{"one", 1},
		{"several", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			var rejected int
			g := newTestGame(t, cfg, Options{
				StatsWindowSec: cfg.Physics.DT,
				StatsCallback:  func(s telemetry.WindowStats) { rejected += s.InputsRejected },
			})

			for i := 0; i < tt.pending; i++ {
				if err := g.PushTarget(math.NaN(), 100); !errors.Is(err, ErrNonFinite) {
					t.Fatalf("PushTarget(NaN) error = %v", err)
				}
			}
			g.Reset()
			stepN(t, g, 2)

			if rejected != 0 {
				t.Errorf("new round counted %d rejections from before reset", rejected)
			}
		})
	}
}

func TestPushTarget_FullQueueKeepsNewest(t *testing.T) {
	cfg := config.Default()
	cfg.Input.QueueSize = 2
	g := newTestGame(t, cfg, Options{})

	for i := 1; i <= 5; i++ {
		if err := g.PushTarget(float64(i*100), 100); err != nil {
			t.Fatal(err)
		}
	}
	g.drainInput()

	if g.CurrentTarget() != (Target{500, 100}) {
		t.Errorf("target = %+v, want newest (500, 100)", g.CurrentTarget())
	}
}

func TestPushTarget_Concurrent(t *testing.T) {
	g := newTestGame(t, nil, Options{})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = g.PushTarget(float64(w*100+i), float64(i))
			}
		}(w)
	}
	wg.Wait()
	stepN(t, g, 1)

	tgt := g.CurrentTarget()
	if tgt.X < 0 || tgt.X > 800 || tgt.Y < 0 || tgt.Y >= 100 {
		t.Errorf("target %+v not one of the pushed points", tgt)
	}
}
