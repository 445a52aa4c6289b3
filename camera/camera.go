// Package camera maps the bounded playfield onto a screen viewport.
package camera

// Camera controls the viewport into the playfield.
// At MinZoom the whole field fits the viewport, letterboxed along the
// axis with spare room; zooming in pans within the field bounds.
type Camera struct {
	// Position is the camera center in field coordinates
	X, Y float64

	// Zoom level (screen pixels per field unit)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Field dimensions
	WorldW, WorldH float64

	// Zoom constraints; MinZoom is the fit-to-viewport zoom
	MinZoom, MaxZoom float64
}

// maxZoomFactor bounds zoom relative to the fit zoom.
const maxZoomFactor = 4.0

// New creates a camera showing the whole field.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	c := &Camera{
		WorldW: worldW,
		WorldH: worldH,
	}
	c.Resize(viewportW, viewportH)
	c.Reset()
	return c
}

// fitZoom returns the largest zoom at which the whole field is visible.
func (c *Camera) fitZoom() float64 {
	zx := c.ViewportW / c.WorldW
	zy := c.ViewportH / c.WorldH
	if zy < zx {
		return zy
	}
	return zx
}

// WorldToScreen converts field coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to field coordinates.
// Points in the letterbox bars map outside the field; callers clamp.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// ScaleToScreen converts a field length to pixels.
func (c *Camera) ScaleToScreen(length float64) float64 {
	return length * c.Zoom
}

// IsVisible returns true if a box centred at (wx, wy) with the given half
// extents could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, halfW, halfH float64) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx+halfW >= minX && wx-halfW <= maxX && wy+halfH >= minY && wy-halfH <= maxY
}

// FieldRect returns the on-screen rectangle covered by the field.
// Everything outside it is letterbox.
func (c *Camera) FieldRect() (x, y, w, h float64) {
	x, y = c.WorldToScreen(0, 0)
	return x, y, c.WorldW * c.Zoom, c.WorldH * c.Zoom
}

// Resize updates viewport dimensions and recalculates zoom constraints.
// A camera showing the whole field keeps showing it.
func (c *Camera) Resize(viewportW, viewportH float64) {
	wasFit := c.Zoom == c.MinZoom
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.fitZoom()
	c.MaxZoom = c.MinZoom * maxZoomFactor
	if wasFit {
		c.Zoom = c.MinZoom
	}
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset shows the whole field, centred.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// VisibleWorldBounds returns the field-coordinate bounds of the visible area.
// Returns (minX, minY, maxX, maxY); at fit zoom these extend past the field
// on the letterboxed axis.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clampCenter keeps the view inside the field. An axis on which the view
// is wider than the field is centred instead.
func (c *Camera) clampCenter() {
	if c.Zoom <= 0 {
		return
	}
	c.X = clampAxis(c.X, c.ViewportW/(2*c.Zoom), c.WorldW)
	c.Y = clampAxis(c.Y, c.ViewportH/(2*c.Zoom), c.WorldH)
}

func clampAxis(center, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
