package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/camera"
	"github.com/pthm-cable/bigfish/game"
)

// FishRenderer draws the player, the obstacles, and the steering target.
type FishRenderer struct {
	Player    rl.Color
	Prey      rl.Color
	Target    rl.Color
	ShowBoxes bool
}

// NewFishRenderer creates a fish renderer with the default palette.
func NewFishRenderer() *FishRenderer {
	return &FishRenderer{
		Player: rl.Color{R: 255, G: 160, B: 60, A: 255},
		Prey:   rl.Color{R: 120, G: 210, B: 170, A: 255},
		Target: rl.Color{R: 255, G: 255, B: 255, A: 90},
	}
}

// Draw renders a snapshot through cam.
func (f *FishRenderer) Draw(cam *camera.Camera, snap *game.Snapshot) {
	tx, ty := cam.WorldToScreen(snap.Target.X, snap.Target.Y)
	rl.DrawCircleLines(int32(tx), int32(ty), 6, f.Target)

	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		if !cam.IsVisible(o.X, o.Y, o.HalfW, o.HalfH) {
			continue
		}
		f.drawFish(cam, o, shade(f.Prey, o.Scale/math.Max(snap.Player.Scale, 1e-6)))
	}

	f.drawFish(cam, &snap.Player, f.Player)
}

func (f *FishRenderer) drawFish(cam *camera.Camera, v *game.EntityView, color rl.Color) {
	x, y := cam.WorldToScreen(v.X, v.Y)
	halfLen := cam.ScaleToScreen(v.HalfW)
	halfWidth := cam.ScaleToScreen(v.HalfH) * 0.6

	cos, sin := math.Cos(v.Heading), math.Sin(v.Heading)
	at := func(along, across float64) rl.Vector2 {
		return rl.Vector2{
			X: float32(x + cos*along - sin*across),
			Y: float32(y + sin*along + cos*across),
		}
	}

	nose := at(halfLen, 0)
	top := at(0, -halfWidth)
	bottom := at(0, halfWidth)
	waist := at(-halfLen*0.6, 0)
	finTop := at(-halfLen, -halfWidth*0.8)
	finBottom := at(-halfLen, halfWidth*0.8)

	drawTriangle(nose, top, bottom, color)
	drawTriangle(waist, top, bottom, color)
	drawTriangle(waist, finTop, finBottom, darken(color))

	eye := at(halfLen*0.45, -halfWidth*0.35)
	rl.DrawCircleV(eye, float32(math.Max(halfWidth*0.12, 1)), rl.Black)

	if f.ShowBoxes {
		bx, by := cam.WorldToScreen(v.X-v.HalfW, v.Y-v.HalfH)
		rl.DrawRectangleLines(int32(bx), int32(by),
			int32(cam.ScaleToScreen(2*v.HalfW)), int32(cam.ScaleToScreen(2*v.HalfH)), rl.Red)
	}
}

// drawTriangle fills a triangle regardless of vertex order.
// raylib only fills triangles wound counter-clockwise on screen.
func drawTriangle(a, b, c rl.Vector2, color rl.Color) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, color)
}

// shade brightens small fish and darkens ones close to the player's size.
func shade(c rl.Color, ratio float64) rl.Color {
	k := 1.2 - 0.6*math.Min(math.Max(ratio, 0), 1)
	return rl.Color{
		R: uint8(math.Min(float64(c.R)*k, 255)),
		G: uint8(math.Min(float64(c.G)*k, 255)),
		B: uint8(math.Min(float64(c.B)*k, 255)),
		A: c.A,
	}
}

func darken(c rl.Color) rl.Color {
	return rl.Color{R: uint8(int(c.R) * 3 / 4), G: uint8(int(c.G) * 3 / 4), B: uint8(int(c.B) * 3 / 4), A: c.A}
}
