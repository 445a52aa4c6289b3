// Package ui draws the heads-up display for the window front-end.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Title       rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Warning     rl.Color
	BarBg       rl.Color
	BarFill     rl.Color
	BarFillHigh rl.Color
	Padding     int32
	LineHeight  int32
	LabelWidth  int32
	BarHeight   int32
	FontSize    int32
	TitleSize   int32
	ButtonW     float32
	ButtonH     float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		Title:       rl.White,
		LabelColor:  rl.LightGray,
		ValueColor:  rl.RayWhite,
		Warning:     rl.Yellow,
		BarBg:       rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:     rl.Color{R: 100, G: 150, B: 200, A: 255},
		BarFillHigh: rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:     10,
		LineHeight:  16,
		LabelWidth:  70,
		BarHeight:   12,
		FontSize:    12,
		TitleSize:   20,
		ButtonW:     90,
		ButtonH:     26,
	}
}
