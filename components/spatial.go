package components

// Position represents an entity's field position (centre of its footprint).
type Position struct {
	X, Y float64
}

// Velocity represents an entity's velocity in field units per second.
type Velocity struct {
	X, Y float64
}

// Rotation holds an entity's heading in radians.
// 0 points along +X, angles increase counter-clockwise (atan2 convention).
type Rotation struct {
	Heading float64
}
