package components

// Body is an axis-aligned collision footprint.
// Scaled bodies multiply the extents by the entity's Scale.
type Body struct {
	Width, Height float64
	Scaled        bool
}

// Extents returns the half-width and half-height of the footprint at the given scale.
func (b Body) Extents(scale float64) (halfW, halfH float64) {
	if !b.Scaled {
		return b.Width / 2, b.Height / 2
	}
	return b.Width * scale / 2, b.Height * scale / 2
}

// Scale is a visual/physical size multiplier.
type Scale struct {
	Value float64
}
