package systems

import (
	"math"
	"math/rand"
)

// Random draws bounded values from a seeded source.
// Not safe for concurrent use; the simulation owns one instance.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Between returns a uniformly random integer in [a, b] inclusive.
// The bounds may be given in either order.
func (r *Random) Between(a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + r.rng.Intn(b-a+1)
}

// FloatBetween returns a uniformly random float in [lo, hi).
// Returns lo when the range is empty.
func (r *Random) FloatBetween(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	v := lo + r.rng.Float64()*(hi-lo)
	// Rounding can land exactly on hi for tiny ranges
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}

// Float64 returns a uniformly random float in [0, 1).
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}
