// Package renderer draws the simulation field with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/camera"
)

// BackgroundRenderer draws the water inside the field letterbox: a vertical
// gradient with slow drifting light bands.
type BackgroundRenderer struct {
	top, bottom rl.Color
	band        rl.Color
	letterbox   rl.Color
	bands       int
}

// NewBackgroundRenderer creates a background with the given base water color.
func NewBackgroundRenderer(baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		top:       rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
		bottom:    rl.Color{R: baseR / 3, G: baseG / 3, B: baseB / 2, A: 255},
		band:      rl.Color{R: 255, G: 255, B: 255, A: 10},
		letterbox: rl.Color{R: 8, G: 10, B: 14, A: 255},
		bands:     6,
	}
}

// Draw renders the background. t is the elapsed time in seconds.
func (b *BackgroundRenderer) Draw(cam *camera.Camera, t float64) {
	rl.ClearBackground(b.letterbox)

	x, y, w, h := cam.FieldRect()
	rl.DrawRectangleGradientV(int32(x), int32(y), int32(w), int32(h), b.top, b.bottom)

	// Light bands slant across the field and drift with time
	bandW := float32(w / float64(b.bands) / 3)
	for i := 0; i < b.bands; i++ {
		phase := t*0.15 + float64(i)*1.7
		bx := x + w*(float64(i)+0.5)/float64(b.bands) + math.Sin(phase)*w*0.04
		top := rl.Vector2{X: float32(bx), Y: float32(y)}
		bottom := rl.Vector2{X: float32(bx - h*0.25), Y: float32(y + h)}
		rl.DrawLineEx(top, bottom, bandW, b.band)
	}

	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), rl.Color{R: 60, G: 70, B: 80, A: 255})
}
