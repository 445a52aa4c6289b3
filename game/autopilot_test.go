package game

import "testing"

func TestAutopilotChasesNearest(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	placeObstacle(t, g, 700, 100)
	placeObstacle(t, g, 300, 320)
	placeObstacle(t, g, 120, 580)

	a := NewAutopilot(1)
	a.Update(g)
	g.drainInput()

	if g.CurrentTarget() != (Target{300, 320}) {
		t.Errorf("target = %+v, want nearest (300, 320)", g.CurrentTarget())
	}
}

func TestAutopilotIgnoresOffFieldSpawns(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	placeObstacle(t, g, 850, 300)

	a := NewAutopilot(1)
	a.Update(g)
	g.drainInput()

	if g.CurrentTarget() != (Target{100, 300}) {
		t.Errorf("target = %+v, want unchanged start", g.CurrentTarget())
	}
}

func TestAutopilotRetargetInterval(t *testing.T) {
	g := newTestGame(t, nil, Options{})
	a := NewAutopilot(15)

	g.tick = 7
	placeObstacle(t, g, 300, 300)
	a.Update(g)
	g.drainInput()
	if g.CurrentTarget() != (Target{100, 300}) {
		t.Errorf("retargeted off-interval: %+v", g.CurrentTarget())
	}

	g.tick = 15
	a.Update(g)
	g.drainInput()
	if g.CurrentTarget() != (Target{300, 300}) {
		t.Errorf("target = %+v, want (300, 300)", g.CurrentTarget())
	}
}
