package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

func TestPhysicsIntegrates(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Velocity](w)
	e := mapper.NewEntity(&components.Position{X: 850, Y: 100}, &components.Velocity{X: -120})

	s := NewPhysicsSystem(w, Bounds{Width: 800, Height: 600})
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60.0)
	}

	pos, _ := mapper.Get(e)
	if math.Abs(pos.X-730) > 1e-6 || pos.Y != 100 {
		t.Errorf("position = (%v, %v), want (730, 100)", pos.X, pos.Y)
	}
}

func TestPhysicsClamp(t *testing.T) {
	s := &PhysicsSystem{bounds: Bounds{Width: 800, Height: 600}}

	tests := []struct {
		name           string
		pos            components.Position
		vel            components.Velocity
		halfW, halfH   float64
		wantX, wantY   float64
		wantVX, wantVY float64
		wantBlocked    bool
	}{
		{"inside", components.Position{X: 400, Y: 300}, components.Velocity{X: 10, Y: 10}, 16, 16, 400, 300, 10, 10, false},
		{"left wall", components.Position{X: 5, Y: 300}, components.Velocity{X: -200, Y: 10}, 16, 16, 16, 300, 0, 10, true},
		{"bottom wall", components.Position{X: 400, Y: 599}, components.Velocity{X: 10, Y: 200}, 16, 16, 400, 584, 10, 0, true},
		{"corner", components.Position{X: 900, Y: -10}, components.Velocity{X: 1, Y: -1}, 20, 20, 780, 20, 0, 0, true},
		{"wider than field", components.Position{X: 100, Y: 300}, components.Velocity{X: 5}, 500, 16, 400, 300, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := tt.pos, tt.vel
			blocked := s.Clamp(&pos, &vel, tt.halfW, tt.halfH)
			if blocked != tt.wantBlocked {
				t.Errorf("blocked = %v, want %v", blocked, tt.wantBlocked)
			}
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			if vel.X != tt.wantVX || vel.Y != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vel.X, vel.Y, tt.wantVX, tt.wantVY)
			}
		})
	}
}
