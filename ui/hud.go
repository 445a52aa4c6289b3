package ui

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/systems"
	"github.com/pthm-cable/bigfish/telemetry"
)

// HUDData holds everything the main HUD shows for one frame.
type HUDData struct {
	ScoreText    string
	Tick         int32
	Speed        int
	FPS          int32
	Paused       bool
	Active       int
	Capacity     int
	PlayerScale  float64
	Faults       int
	ScreenWidth  int32
	ScreenHeight int32
}

// HUDAction reports which HUD buttons were clicked this frame.
type HUDAction struct {
	TogglePause bool
	Restart     bool
}

// HUD renders the score, round status, and the pause and restart buttons.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Buttons returns the pause and restart button rectangles for a screen width.
func (h *HUD) Buttons(screenWidth int32) (pause, restart rl.Rectangle) {
	t := h.renderer.Theme
	pad := float32(t.Padding)
	x := float32(screenWidth) - pad - t.ButtonW
	restart = rl.Rectangle{X: x, Y: pad, Width: t.ButtonW, Height: t.ButtonH}
	pause = rl.Rectangle{X: x - pad - t.ButtonW, Y: pad, Width: t.ButtonW, Height: t.ButtonH}
	return pause, restart
}

// Captures reports whether a screen point lies on a HUD control, so pointer
// input there is not treated as a steering target.
func (h *HUD) Captures(x, y float32, screenWidth int32) bool {
	p := rl.Vector2{X: x, Y: y}
	pause, restart := h.Buttons(screenWidth)
	return rl.CheckCollisionPointRec(p, pause) || rl.CheckCollisionPointRec(p, restart)
}

// Draw renders the HUD and returns the button clicks.
func (h *HUD) Draw(data HUDData) HUDAction {
	t := h.renderer.Theme
	pad := t.Padding

	h.renderer.DrawPanel(pad-4, pad-4, 250, 104)
	gui.Label(rl.Rectangle{X: float32(pad), Y: float32(pad), Width: 230, Height: 24}, data.ScoreText)

	y := pad + 28
	y = h.renderer.DrawLabelValue(pad, y, "Tick", fmt.Sprintf("%d  (%dx, %d fps)", data.Tick, data.Speed, data.FPS))
	y = h.renderer.DrawLabelValue(pad, y, "Size", fmt.Sprintf("%.2f", data.PlayerScale))
	ratio := float32(0)
	if data.Capacity > 0 {
		ratio = float32(data.Active) / float32(data.Capacity)
	}
	y = h.renderer.DrawBar(pad, y, "Fish", ratio, 0.9, fmt.Sprintf("%d/%d", data.Active, data.Capacity), 240)

	if data.Paused {
		rl.DrawText("PAUSED", pad, y, 16, t.Warning)
	} else if data.Faults > 0 {
		rl.DrawText(fmt.Sprintf("faults: %d", data.Faults), pad, y, 14, t.BarFillHigh)
	}

	pauseRect, restartRect := h.Buttons(data.ScreenWidth)
	label := "Pause"
	if data.Paused {
		label = "Resume"
	}
	return HUDAction{
		TogglePause: gui.Button(pauseRect, label),
		Restart:     gui.Button(restartRect, "Restart"),
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	Stats    telemetry.PerfStats
	Registry *systems.SystemRegistry
}

// PerfPanel renders the per-phase tick timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel, slowest phase first.
func (p *PerfPanel) Draw(data PerfPanelData) {
	x, y := p.x, p.y
	stats := data.Stats

	phases := make([]string, 0, len(stats.PhaseAvg))
	for phase := range stats.PhaseAvg {
		phases = append(phases, phase)
	}
	slices.SortFunc(phases, func(a, b string) int {
		return cmp.Compare(stats.PhaseAvg[b], stats.PhaseAvg[a])
	})

	p.renderer.DrawPanel(x-6, y-6, 250, int32(44+14*len(phases)))
	rl.DrawText("Tick Phases", x, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("Avg: %s  (%.0f tps)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond),
		x, y, 14, rl.Yellow)
	y += 16

	for _, phase := range phases {
		pct := stats.PhasePct[phase]
		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		name := phase
		if data.Registry != nil {
			name = data.Registry.GetName(phase)
		}
		rl.DrawText(fmt.Sprintf("%-10s %6s %5.1f%%", name, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color)
		y += 14
	}
}
