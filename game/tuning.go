package game

import "image/color"

const (
	CanvasWidth  = 600.0
	CanvasHeight = 400.0

	PlayerStartX   = 150.0
	PlayerStartY   = 150.0
	PlayerHalfSize = 15.0
	PlayerSpeed    = 5.0

	OrbCount  = 5
	OrbRadius = 8.0

	GlowBlur = 15.0

	// CollectDistance is the center distance below which an orb is collected.
	CollectDistance = PlayerHalfSize + OrbRadius
)

var (
	// TrailColor is painted over the whole canvas every frame; its alpha
	// leaves a fading trail instead of a hard clear.
	TrailColor  = color.RGBA{R: 10, G: 14, B: 39, A: 204}
	PlayerColor = color.RGBA{R: 0xff, G: 0x00, B: 0x6e, A: 0xff}
	OrbColor    = color.RGBA{R: 0x00, G: 0xd9, B: 0xff, A: 0xff}
)
