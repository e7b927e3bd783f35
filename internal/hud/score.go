// Package hud draws the status strip below the playfield.
package hud

import (
	"image/color"

	"neonorbs/hal"
	"neonorbs/internal/font6x8"
	"neonorbs/internal/rgb565"

	"tinygo.org/x/tinyfont"
)

var (
	Background = color.RGBA{R: 10, G: 14, B: 39, A: 255}
	Foreground = color.RGBA{R: 0x00, G: 0xd9, B: 0xff, A: 255}
)

const marginX = 4

// Score shows a single line of text in a horizontal strip of a framebuffer.
type Score struct {
	fb   hal.Framebuffer
	y0   int
	h    int
	text string
}

// NewScore returns a display for rows [y0, y0+h) of fb, or nil when the strip
// does not fit or is shorter than one text line.
func NewScore(fb hal.Framebuffer, y0, h int) *Score {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	if y0 < 0 || h < font6x8.Height || y0+h > fb.Height() {
		return nil
	}
	return &Score{fb: fb, y0: y0, h: h}
}

// Text returns the text last set.
func (s *Score) Text() string { return s.text }

// SetText clears the strip and draws text vertically centered in it.
func (s *Score) SetText(text string) {
	s.text = text
	d := &stripDisplay{fb: s.fb, y0: s.y0, h: s.h}
	d.fill(Background)
	baseline := (s.h-font6x8.Height)/2 + font6x8.Ascent
	tinyfont.WriteLine(d, font6x8.Font, marginX, int16(baseline), text, Foreground)
}

// stripDisplay adapts a band of framebuffer rows to drivers.Displayer.
// Coordinates are relative to the band.
type stripDisplay struct {
	fb hal.Framebuffer
	y0 int
	h  int
}

func (d *stripDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.h)
}

func (d *stripDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.h {
		return
	}
	off := (d.y0+iy)*d.fb.StrideBytes() + ix*2
	rgb565.Store(d.fb.Buffer(), off, rgb565.Pack(c.R, c.G, c.B))
}

func (d *stripDisplay) Display() error { return nil }

func (d *stripDisplay) fill(c color.RGBA) {
	pixel := rgb565.Pack(c.R, c.G, c.B)
	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	for y := d.y0; y < d.y0+d.h; y++ {
		for x := 0; x < d.fb.Width(); x++ {
			rgb565.Store(buf, y*stride+x*2, pixel)
		}
	}
}
