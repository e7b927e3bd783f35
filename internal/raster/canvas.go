// Package raster draws game shapes into RGB565 framebuffers.
package raster

import (
	"image/color"
	"math"

	"neonorbs/hal"
	"neonorbs/internal/rgb565"
)

// glowStrength is the peak alpha of a glow right at the shape's edge.
const glowStrength = 0.6

// Canvas is a game.Surface over a rectangle of a framebuffer. Shapes are
// clipped to that rectangle and alpha blended onto what is already there.
type Canvas struct {
	fb            hal.Framebuffer
	x0, y0, w, h int

	fill color.RGBA
	glow color.RGBA
	blur float64
}

// NewCanvas returns a canvas of w×h pixels with its origin at (x0, y0) of
// fb. It returns nil when fb is not RGB565 or the rectangle does not fit.
func NewCanvas(fb hal.Framebuffer, x0, y0, w, h int) *Canvas {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	if x0 < 0 || y0 < 0 || w <= 0 || h <= 0 || x0+w > fb.Width() || y0+h > fb.Height() {
		return nil
	}
	return &Canvas{fb: fb, x0: x0, y0: y0, w: w, h: h}
}

func (c *Canvas) Size() (w, h int) { return c.w, c.h }

func (c *Canvas) SetFill(col color.RGBA) { c.fill = col }

func (c *Canvas) SetGlow(col color.RGBA, blur float64) {
	c.glow = col
	c.blur = blur
}

func (c *Canvas) glowing() bool { return c.blur > 0 && c.glow.A > 0 }

// FillRect fills the axis-aligned rectangle [x, x+w) × [y, y+h).
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w, y+h
	c.shade(x, y, x1, y1, func(px, py float64) float64 {
		dx := math.Max(math.Max(x-px, px-x1), 0)
		dy := math.Max(math.Max(y-py, py-y1), 0)
		return math.Hypot(dx, dy)
	})
}

// FillCircle fills the disc of radius r centered on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	c.shade(cx-r, cy-r, cx+r, cy+r, func(px, py float64) float64 {
		return math.Max(math.Hypot(px-cx, py-cy)-r, 0)
	})
}

// shade visits every pixel of the box [x0, x1) × [y0, y1) grown by the blur
// radius. dist reports how far a pixel center lies outside the shape: zero
// inside, where the fill color is blended; up to the blur radius outside,
// where the glow fades out quadratically.
func (c *Canvas) shade(x0, y0, x1, y1 float64, dist func(px, py float64) float64) {
	pad := 0.0
	if c.glowing() {
		pad = c.blur
	}
	minX := clampInt(int(math.Floor(x0-pad)), 0, c.w)
	minY := clampInt(int(math.Floor(y0-pad)), 0, c.h)
	maxX := clampInt(int(math.Ceil(x1+pad)), 0, c.w)
	maxY := clampInt(int(math.Ceil(y1+pad)), 0, c.h)

	buf := c.fb.Buffer()
	stride := c.fb.StrideBytes()
	for py := minY; py < maxY; py++ {
		row := (c.y0+py)*stride + c.x0*2
		for px := minX; px < maxX; px++ {
			d := dist(float64(px)+0.5, float64(py)+0.5)
			off := row + px*2
			switch {
			case d == 0:
				if c.glowing() {
					// The shadow sits under the fill, as on an HTML canvas.
					rgb565.Store(buf, off, rgb565.Over(rgb565.Load(buf, off), c.glow, glowStrength))
				}
				rgb565.Store(buf, off, rgb565.Over(rgb565.Load(buf, off), c.fill, 1))
			case pad > 0 && d < pad:
				k := 1 - d/pad
				rgb565.Store(buf, off, rgb565.Over(rgb565.Load(buf, off), c.glow, glowStrength*k*k))
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
