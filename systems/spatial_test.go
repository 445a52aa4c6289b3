package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/bigfish/components"
)

func TestSpatialGridQueryRect(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](w)
	near := mapper.NewEntity(&components.Position{X: 100, Y: 100})
	far := mapper.NewEntity(&components.Position{X: 700, Y: 500})
	offField := mapper.NewEntity(&components.Position{X: 850, Y: 500})

	g := NewSpatialGrid(800, 600, 64)
	g.Insert(near, 100, 100)
	g.Insert(far, 700, 500)
	g.Insert(offField, 850, 500)

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	got := g.QueryRectInto(nil, 80, 80, 120, 120)
	if len(got) != 1 || got[0] != near {
		t.Errorf("query near origin = %v, want [near]", got)
	}

	// Right edge query picks up the clamped off-field entity
	got = g.QueryRectInto(nil, 780, 480, 900, 520)
	if len(got) != 1 || got[0] != offField {
		t.Errorf("edge query = %v, want [offField]", got)
	}

	g.Clear()
	if g.Len() != 0 {
		t.Errorf("Len() after Clear = %d", g.Len())
	}
}
