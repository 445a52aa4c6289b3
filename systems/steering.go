package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bigfish/components"
)

// SteerCommand is the velocity command issued for one tick.
type SteerCommand struct {
	Velocity r2.Vec
	Heading  float64 // only meaningful when Moving
	Moving   bool
	Distance float64 // distance to target before the move
}

// Steer computes the seek command from pos toward target.
// Beyond stopEpsilon the entity heads straight for the target at maxSpeed;
// within it the command is a full stop. The speed is additionally capped at
// distance/dt so one integration step never carries the entity past the target.
func Steer(pos, target r2.Vec, maxSpeed, stopEpsilon, dt float64) SteerCommand {
	delta := r2.Sub(target, pos)
	d := r2.Norm(delta)

	if !(d > stopEpsilon) {
		return SteerCommand{Distance: d}
	}

	speed := maxSpeed
	if dt > 0 && d/dt < speed {
		speed = d / dt
	}

	return SteerCommand{
		Velocity: r2.Scale(speed/d, delta),
		Heading:  math.Atan2(delta.Y, delta.X),
		Moving:   true,
		Distance: d,
	}
}

// SteeringSystem drives the controlled entity toward the current target.
type SteeringSystem struct {
	maxSpeed    float64
	stopEpsilon float64
}

// NewSteeringSystem creates a steering system.
func NewSteeringSystem(maxSpeed, stopEpsilon float64) *SteeringSystem {
	return &SteeringSystem{maxSpeed: maxSpeed, stopEpsilon: stopEpsilon}
}

// Update writes the steering command into the entity's velocity and heading.
// Heading is left untouched when the entity has arrived.
func (s *SteeringSystem) Update(pos *components.Position, vel *components.Velocity, rot *components.Rotation, target r2.Vec, dt float64) SteerCommand {
	cmd := Steer(r2.Vec{X: pos.X, Y: pos.Y}, target, s.maxSpeed, s.stopEpsilon, dt)

	vel.X = cmd.Velocity.X
	vel.Y = cmd.Velocity.Y
	if cmd.Moving {
		rot.Heading = cmd.Heading
	}
	return cmd
}
