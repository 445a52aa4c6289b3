// Package terminal runs the simulation inside a terminal using tcell.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/bigfish/game"
)

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	waterStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorBlack).Bold(true)
	preyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	bigStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	targetStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

// View draws game snapshots to a tcell screen and turns terminal input into
// game commands.
type View struct {
	screen tcell.Screen
	snap   game.Snapshot
}

// NewView creates a view on an initialised screen and enables mouse input.
func NewView(screen tcell.Screen) *View {
	screen.EnableMouse()
	screen.HideCursor()
	return &View{screen: screen}
}

// Draw renders the current game state. It must run on the game's owner
// goroutine, typically as Runner.OnTick.
func (v *View) Draw(g *game.Game) {
	g.Snapshot(&v.snap)
	v.render(&v.snap)
}

func (v *View) layout(snap *game.Snapshot) Layout {
	cols, rows := v.screen.Size()
	return Layout{Cols: cols, Rows: rows, FieldW: snap.FieldW, FieldH: snap.FieldH}
}

func (v *View) render(snap *game.Snapshot) {
	s := v.screen
	l := v.layout(snap)
	s.Fill(' ', waterStyle)

	status := ""
	if snap.Paused {
		status = "  [paused]"
	}
	header := fmt.Sprintf(" %s  size %.2f  tick %d%s   p:pause r:restart q:quit", snap.ScoreText, snap.Player.Scale, snap.Tick, status)
	for col := 0; col < l.Cols; col++ {
		ch := ' '
		if col < len(header) {
			ch = rune(header[col])
		}
		s.SetContent(col, 0, ch, nil, hudStyle)
	}

	if col, row, ok := l.FieldToCell(snap.Target.X, snap.Target.Y); ok {
		s.SetContent(col, row, '+', nil, targetStyle)
	}

	half := snap.Player.Scale / 2
	for _, o := range snap.Obstacles {
		col, row, ok := l.FieldToCell(o.X, o.Y)
		if !ok {
			continue
		}
		glyph, style := 'o', preyStyle
		if o.Scale > half {
			glyph, style = 'O', bigStyle
		}
		s.SetContent(col, row, glyph, nil, style)
	}

	if col, row, ok := l.FieldToCell(snap.Player.X, snap.Player.Y); ok {
		s.SetContent(col, row, '@', nil, playerStyle)
	}
	s.Show()
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit. Pause and restart run on the owner goroutine via runner.
func (v *View) HandleEvent(ctx context.Context, runner *game.Runner, g *game.Game, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				v.do(ctx, runner, (*game.Game).TogglePause)
			case 'r':
				v.do(ctx, runner, (*game.Game).Reset)
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		col, row := ev.Position()
		if row < hudRows {
			return true
		}
		cols, rows := v.screen.Size()
		cfg := g.Config()
		l := Layout{Cols: cols, Rows: rows, FieldW: cfg.Derived.FieldW, FieldH: cfg.Derived.FieldH}
		x, y := l.CellToField(col, row)
		if err := g.PushTarget(x, y); err != nil {
			slog.Debug("terminal target rejected", "error", err)
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) do(ctx context.Context, runner *game.Runner, fn func(*game.Game)) {
	if err := runner.Do(ctx, fn); err != nil {
		slog.Debug("terminal command dropped", "error", err)
	}
}

// Run drives g in real time and draws it to screen until the user quits,
// ctx is cancelled, or maxTicks is reached. The caller owns screen and
// must call Fini after Run returns.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, maxTicks int32) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v := NewView(screen)
	runner := game.NewRunner(g)
	runner.MaxTicks = maxTicks
	runner.OnTick = v.Draw

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		for {
			select {
			case ev := <-events:
				if !v.HandleEvent(ctx, runner, g, ev) {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
