package systems

import "testing"

func TestRandomBetween_InclusiveBothOrders(t *testing.T) {
	r := NewRandom(7)

	for _, bounds := range [][2]int{{-3, 3}, {3, -3}} {
		seen := make(map[int]bool)
		for i := 0; i < 5000; i++ {
			v := r.Between(bounds[0], bounds[1])
			if v < -3 || v > 3 {
				t.Fatalf("Between(%d, %d) = %d out of range", bounds[0], bounds[1], v)
			}
			seen[v] = true
		}
		if len(seen) != 7 {
			t.Errorf("Between(%d, %d) produced %d distinct values, want 7", bounds[0], bounds[1], len(seen))
		}
	}
}

func TestRandomBetween_SingleValue(t *testing.T) {
	r := NewRandom(1)
	if v := r.Between(42, 42); v != 42 {
		t.Errorf("Between(42, 42) = %d", v)
	}
}

func TestRandomFloatBetween(t *testing.T) {
	r := NewRandom(3)
	for i := 0; i < 5000; i++ {
		v := r.FloatBetween(0.2, 0.45)
		if v < 0.2 || v >= 0.45 {
			t.Fatalf("FloatBetween(0.2, 0.45) = %v out of range", v)
		}
	}

	if v := r.FloatBetween(0.5, 0.5); v != 0.5 {
		t.Errorf("empty range returned %v, want lower bound", v)
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 100; i++ {
		if a.Between(0, 1000) != b.Between(0, 1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
}
