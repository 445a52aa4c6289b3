package main

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/camera"
	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/game"
	"github.com/pthm-cable/bigfish/renderer"
	"github.com/pthm-cable/bigfish/ui"
)

const controlsText = "drag: steer | space: pause | r: restart | ,/.: speed | wheel,+/-: zoom | arrows: pan | home: fit | b: boxes | p: perf"

// runWindow opens a raylib window and runs the game one Update per frame.
func runWindow(cfg *config.Config, g *game.Game, maxTicks int32) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	cam := camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.Derived.FieldW, cfg.Derived.FieldH)
	background := renderer.NewBackgroundRenderer(30, 90, 150)
	fish := renderer.NewFishRenderer()
	hud := ui.NewHUD()
	perf := ui.NewPerfPanel(10, 130)
	showPerf := false

	var pointer renderer.Pointer
	var snap game.Snapshot

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			cam.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		}
		screenW := int32(rl.GetScreenWidth())
		screenH := int32(rl.GetScreenHeight())

		keys := renderer.ReadKeys(cam, float64(rl.GetFrameTime()))
		if keys.TogglePause {
			g.TogglePause()
		}
		if keys.Restart {
			g.Reset()
		}
		if keys.SpeedDelta != 0 {
			g.SetSpeed(g.Speed() + keys.SpeedDelta)
		}
		if keys.ToggleBoxes {
			fish.ShowBoxes = !fish.ShowBoxes
		}
		if keys.TogglePerf {
			showPerf = !showPerf
		}

		captures := func(x, y float32) bool { return hud.Captures(x, y, screenW) }
		if x, y, ok := pointer.Poll(cam, captures); ok {
			if err := g.PushTarget(x, y); err != nil {
				slog.Debug("pointer target rejected", "error", err)
			}
		}

		// Faults are logged by Step; the window keeps running
		_ = g.Update()
		g.RecordFrame()
		g.Snapshot(&snap)

		rl.BeginDrawing()
		background.Draw(cam, rl.GetTime())
		fish.Draw(cam, &snap)
		action := hud.Draw(ui.HUDData{
			ScoreText:    snap.ScoreText,
			Tick:         snap.Tick,
			Speed:        g.Speed(),
			FPS:          rl.GetFPS(),
			Paused:       snap.Paused,
			Active:       len(snap.Obstacles),
			Capacity:     cfg.Spawner.MaxActive,
			PlayerScale:  snap.Player.Scale,
			Faults:       snap.Faults,
			ScreenWidth:  screenW,
			ScreenHeight: screenH,
		})
		if showPerf {
			perf.Draw(ui.PerfPanelData{Stats: g.PerfStats(), Registry: g.Registry()})
		}
		hud.DrawControls(screenH, controlsText)
		rl.EndDrawing()

		if action.TogglePause {
			g.TogglePause()
		}
		if action.Restart {
			g.Reset()
		}

		if maxTicks > 0 && g.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "score", g.Score())
			return
		}
	}
}
