package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"tinygo.org/x/tinyfont"

	"neonorbs/hal"
	"neonorbs/internal/font6x8"
	"neonorbs/internal/rgb565"
)

// crash reports a panic from inside a frame: the stack goes to the HAL log
// and onto the screen, and the returned error stops the runner.
func (s *System) crash(v any) error {
	stack := debug.Stack()
	s.log.Error("frame panicked", zap.Any("panic", v), zap.Uint64("frame", s.frames))

	lines := []string{
		"Panic:",
		fmt.Sprintf("frame: %d", s.frames),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	if l := s.h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}
	if s.fb != nil {
		drawPanicScreen(s.fb, lines)
		_ = s.fb.Present()
	}
	return fmt.Errorf("game panic at frame %d: %v", s.frames, v)
}

func drawPanicScreen(fb hal.Framebuffer, lines []string) {
	fb.ClearRGB(255, 255, 255)

	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	cols := fb.Width() / font6x8.Width
	if cols <= 0 {
		return
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+font6x8.Height > fb.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font6x8.Font, 0, int16(y+font6x8.Ascent), chunk, fg)
			y += font6x8.Height
			line = strings.TrimLeft(rest, " ")
		}
	}
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	rgb565.Store(d.fb.Buffer(), iy*d.fb.StrideBytes()+ix*2, rgb565.Pack(c.R, c.G, c.B))
}

func (d panicDisplay) Display() error { return nil }

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
