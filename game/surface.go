package game

import "image/color"

// Surface is a stateful immediate-mode drawing target sized to the canvas.
// Fill and glow settings persist until changed.
type Surface interface {
	SetFill(c color.RGBA)
	// SetGlow sets the blurred shadow drawn around later shapes. A zero blur
	// or transparent color disables it.
	SetGlow(c color.RGBA, blur float64)
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
}

// ScoreDisplay shows the score text next to the canvas.
type ScoreDisplay interface {
	SetText(s string)
}
