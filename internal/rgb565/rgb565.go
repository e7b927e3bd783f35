// Package rgb565 converts between 24-bit color and the 16bpp little-endian
// pixels stored in framebuffers.
package rgb565

import "image/color"

// Pack returns the 565 pixel closest to r, g, b.
func Pack(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// Unpack expands p to 8 bits per channel.
func Unpack(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// Load reads the pixel at byte offset off of buf.
func Load(buf []byte, off int) uint16 {
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

// Store writes p at byte offset off of buf.
func Store(buf []byte, off int, p uint16) {
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// Over composites c over dst with c's alpha scaled by coverage in [0, 1].
func Over(dst uint16, c color.RGBA, coverage float64) uint16 {
	a := float64(c.A) / 255 * coverage
	if a <= 0 {
		return dst
	}
	if a >= 1 {
		return Pack(c.R, c.G, c.B)
	}
	dr, dg, db := Unpack(dst)
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return Pack(mix(c.R, dr), mix(c.G, dg), mix(c.B, db))
}
