package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/bigfish/config"
	"github.com/pthm-cable/bigfish/game"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	g, err := game.NewGame(config.Default(), game.Options{Seed: 3})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })

	return NewView(screen), screen, g
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for col := 0; col < cols; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestViewDrawsPlayerAndScore(t *testing.T) {
	v, screen, g := newTestView(t)
	v.Draw(g)

	if header := rowText(screen, 0); !strings.Contains(header, "Score: 0") {
		t.Errorf("header %q does not show the score", header)
	}
	ch, _, _, _ := screen.GetContent(10, 13)
	if ch != '@' {
		t.Errorf("cell (10, 13) = %q, want player glyph", ch)
	}
}

func TestViewMouseSetsTarget(t *testing.T) {
	v, _, g := newTestView(t)

	ev := tcell.NewEventMouse(40, 13, tcell.Button1, tcell.ModNone)
	if !v.HandleEvent(context.Background(), nil, g, ev) {
		t.Fatal("mouse event should not quit")
	}
	if err := g.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	target := g.CurrentTarget()
	if target.X != 405 || target.Y != 312.5 {
		t.Errorf("target = %+v, want (405, 312.5)", target)
	}
}

func TestViewIgnoresHUDAndReleasedMouse(t *testing.T) {
	v, _, g := newTestView(t)
	start := g.CurrentTarget()

	events := []tcell.Event{
		tcell.NewEventMouse(40, 0, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(40, 13, tcell.ButtonNone, tcell.ModNone),
	}
	for _, ev := range events {
		v.HandleEvent(context.Background(), nil, g, ev)
	}
	if err := g.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if got := g.CurrentTarget(); got != start {
		t.Errorf("target moved to %+v, want %+v", got, start)
	}
}
