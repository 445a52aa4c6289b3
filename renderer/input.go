package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/camera"
)

// panSpeed is the keyboard pan rate in screen pixels per second.
const panSpeed = 400.0

// Pointer turns mouse and touch input into field coordinates.
// A press that starts on a HUD control is ignored until it is released.
type Pointer struct {
	down     bool
	captured bool
}

// Poll returns the field position under the active pointer, if any.
// hudCaptures reports whether a screen point belongs to the HUD.
func (p *Pointer) Poll(cam *camera.Camera, hudCaptures func(x, y float32) bool) (wx, wy float64, ok bool) {
	var pos rl.Vector2
	switch {
	case rl.GetTouchPointCount() > 0:
		pos = rl.GetTouchPosition(0)
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		pos = rl.GetMousePosition()
	default:
		p.down = false
		return 0, 0, false
	}

	if !p.down {
		p.down = true
		p.captured = hudCaptures(pos.X, pos.Y)
	}
	if p.captured {
		return 0, 0, false
	}

	wx, wy = cam.ScreenToWorld(float64(pos.X), float64(pos.Y))
	return wx, wy, true
}

// Actions holds the keyboard commands issued this frame.
type Actions struct {
	TogglePause bool
	Restart     bool
	SpeedDelta  int
	ToggleBoxes bool
	TogglePerf  bool
}

// ReadKeys polls the keyboard, applies camera controls directly, and returns
// the simulation commands. dt is the frame time in seconds.
func ReadKeys(cam *camera.Camera, dt float64) Actions {
	var a Actions
	a.TogglePause = rl.IsKeyPressed(rl.KeySpace)
	a.Restart = rl.IsKeyPressed(rl.KeyR)
	a.ToggleBoxes = rl.IsKeyPressed(rl.KeyB)
	a.TogglePerf = rl.IsKeyPressed(rl.KeyP)
	if rl.IsKeyPressed(rl.KeyPeriod) {
		a.SpeedDelta++
	}
	if rl.IsKeyPressed(rl.KeyComma) {
		a.SpeedDelta--
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.ZoomBy(1 + 0.1*float64(wheel))
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		cam.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Reset()
	}

	step := panSpeed * dt
	var dx, dy float64
	if rl.IsKeyDown(rl.KeyLeft) {
		dx -= step
	}
	if rl.IsKeyDown(rl.KeyRight) {
		dx += step
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dy -= step
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dy += step
	}
	if dx != 0 || dy != 0 {
		cam.Pan(dx, dy)
	}
	return a
}
