package render

import "math"

// Camera maps arena coordinates to the screen. The arena fits the screen exactly, so
// the only transform is a decaying shake offset.
type Camera struct {
	shakeMag   float64
	shakeLeft  float64 // ms
	shakeTotal float64
	clock      float64
}

// NewCamera creates a camera with default settings
func NewCamera() *Camera {
	return &Camera{}
}

// Reset stops any shake in progress
func (c *Camera) Reset() {
	*c = Camera{}
}

// Shake starts a shake; a stronger shake replaces a weaker one in progress
func (c *Camera) Shake(magnitude, durationMs float64) {
	if c.shakeLeft > 0 && c.currentMag() > magnitude {
		return
	}
	c.shakeMag = magnitude
	c.shakeLeft = durationMs
	c.shakeTotal = durationMs
}

// Update advances the camera by dtMs
func (c *Camera) Update(dtMs float64) {
	c.clock += dtMs
	if c.shakeLeft > 0 {
		c.shakeLeft = math.Max(0, c.shakeLeft-dtMs)
	}
}

func (c *Camera) currentMag() float64 {
	if c.shakeTotal <= 0 {
		return 0
	}
	return c.shakeMag * c.shakeLeft / c.shakeTotal
}

// Offset returns the current screen displacement
func (c *Camera) Offset() (dx, dy float64) {
	m := c.currentMag()
	if m == 0 {
		return 0, 0
	}
	return m * math.Sin(c.clock*0.09), m * math.Cos(c.clock*0.13)
}

// WorldToScreen converts arena coordinates to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float32, float32) {
	dx, dy := c.Offset()
	return float32(wx + dx), float32(wy + dy)
}
