package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bigfish/components"
)

const testDT = 1.0 / 60.0

// ---------- Arrival ----------

func TestSteer_ArrivalStops(t *testing.T) {
	tests := []struct {
		name        string
		pos, target r2.Vec
	}{
		{"exact target", r2.Vec{X: 100, Y: 300}, r2.Vec{X: 100, Y: 300}},
		{"inside epsilon", r2.Vec{X: 100, Y: 300}, r2.Vec{X: 103, Y: 304}},
		{"on epsilon", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Steer(tt.pos, tt.target, 200, 5, testDT)
			if cmd.Moving {
				t.Fatal("expected stop command")
			}
			if cmd.Velocity != (r2.Vec{}) {
				t.Errorf("velocity = %v, want zero", cmd.Velocity)
			}
		})
	}
}

func TestSteeringSystem_ArrivalKeepsHeading(t *testing.T) {
	s := NewSteeringSystem(200, 5)
	pos := components.Position{X: 100, Y: 300}
	vel := components.Velocity{X: 50, Y: -20}
	rot := components.Rotation{Heading: 1.25}

	s.Update(&pos, &vel, &rot, r2.Vec{X: 102, Y: 301}, testDT)

	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity = (%v, %v), want zero", vel.X, vel.Y)
	}
	if rot.Heading != 1.25 {
		t.Errorf("heading changed to %v on arrival", rot.Heading)
	}
}

// ---------- Seeking ----------

func TestSteer_HeadingAndSpeed(t *testing.T) {
	origin := r2.Vec{X: 100, Y: 300}
	tests := []struct {
		name        string
		target      r2.Vec
		wantHeading float64
	}{
		{"positive x", r2.Vec{X: 400, Y: 300}, 0},
		{"negative x", r2.Vec{X: 0, Y: 300}, math.Pi},
		{"positive y", r2.Vec{X: 100, Y: 500}, math.Pi / 2},
		{"negative y", r2.Vec{X: 100, Y: 100}, -math.Pi / 2},
		{"diagonal", r2.Vec{X: 200, Y: 400}, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Steer(origin, tt.target, 200, 5, testDT)
			if !cmd.Moving {
				t.Fatal("expected move command")
			}
			if math.Abs(cmd.Heading-tt.wantHeading) > 1e-9 {
				t.Errorf("heading = %v, want %v", cmd.Heading, tt.wantHeading)
			}
			if speed := r2.Norm(cmd.Velocity); math.Abs(speed-200) > 1e-9 {
				t.Errorf("speed = %v, want 200", speed)
			}
		})
	}
}

func TestSteer_NoOvershoot(t *testing.T) {
	// 6 units away with a one-second tick: full speed would overshoot by 194
	cmd := Steer(r2.Vec{}, r2.Vec{X: 6}, 200, 5, 1)
	if !cmd.Moving {
		t.Fatal("expected move command")
	}
	if math.Abs(cmd.Velocity.X-6) > 1e-9 || cmd.Velocity.Y != 0 {
		t.Errorf("velocity = %v, want (6, 0)", cmd.Velocity)
	}
}

func TestSteer_MonotonicApproach(t *testing.T) {
	targets := []r2.Vec{
		{X: 700, Y: 500},
		{X: 0, Y: 0},
		{X: 100, Y: 306},
		{X: 795, Y: 10},
	}

	for _, dt := range []float64{testDT, 0.1, 0.75} {
		for _, target := range targets {
			pos := r2.Vec{X: 100, Y: 300}
			prev := r2.Norm(r2.Sub(target, pos))

			for i := 0; i < 10000; i++ {
				cmd := Steer(pos, target, 200, 5, dt)
				if !cmd.Moving {
					break
				}
				pos = r2.Add(pos, r2.Scale(dt, cmd.Velocity))
				d := r2.Norm(r2.Sub(target, pos))
				if !(d < prev) {
					t.Fatalf("dt=%v target=%v: distance did not decrease (%v -> %v)", dt, target, prev, d)
				}
				prev = d
			}

			if prev > 5 {
				t.Errorf("dt=%v target=%v: never arrived, distance %v", dt, target, prev)
			}
		}
	}
}
